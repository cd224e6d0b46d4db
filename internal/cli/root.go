// Package cli contains the vlcgen command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "vlcgen",
	Short: "Parse LibVLC include files and generate bindings code",
	Long: `vlcgen parses the tagged declarations of LibVLC public API headers
and generates binding source code.

Backends:
  python   one combined ctypes module, including class wrappers derived
           from each function's first parameter type
  java     one JNA enum file per discovered enum plus LibVlc.java

Only VLC_PUBLIC_API prototypes and enum typedefs are recognized; other
declarations are ignored. "vlcgen check" and "vlcgen dump" audit the
recovered declarations without emitting anything.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: vlcgen.yaml)")
}
