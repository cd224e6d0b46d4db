// Package generator renders the recovered declaration model as backend
// source text: a combined ctypes stream for the python backend, and one
// file per enum plus an aggregate interface file for the java backend.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultBlacklist lists declarations excluded from wrapping and from
// function emission in every backend.
var DefaultBlacklist = map[string]bool{
	"libvlc_set_exit_handler":    true,
	"libvlc_video_set_callbacks": true,
}

// BuildDate returns the stamp written into generated headers. It is the
// only time-varying field of the output.
func BuildDate() string {
	return time.Now().Format(time.ANSIC)
}

// spliceBoilerplate copies a static boilerplate file into w, replacing a
// line starting with "build_date" by stampLine and a line starting with
// "# GENERATED_ENUMS" by the output of enumHook (when non-nil). Every
// other line is copied with trailing whitespace stripped.
func spliceBoilerplate(w io.Writer, path, stampLine string, enumHook func(io.Writer) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read boilerplate %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "build_date"):
			if _, err := fmt.Fprintln(w, stampLine); err != nil {
				return err
			}
		case strings.HasPrefix(line, "# GENERATED_ENUMS") && enumHook != nil:
			if err := enumHook(w); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " \t")); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read boilerplate %s: %w", path, err)
	}
	return nil
}
