// Package main is the entry point for the vlcgen binding generator.
package main

import (
	"github.com/gopykens/python-vlc/internal/cli"
)

func main() {
	cli.Execute()
}
