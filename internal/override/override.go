// Package override parses the hand-written per-class override files that
// get spliced into generated output. An override file is a sequence of
// "class <Name>:" marker lines, each followed by a verbatim body running
// until the next marker or end of input.
package override

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	classRe = regexp.MustCompile(`^class (\S+):`)
	defRe   = regexp.MustCompile(`(?m)^\s+def\s+(\w+)`)
)

// Record is the override material for one wrapper class.
type Record struct {
	// Docstring is the class-level documentation, taken from a leading
	// triple-quoted literal in the body (removed from Code).
	Docstring string
	// Code is the verbatim body spliced ahead of generated methods.
	Code string
	// Methods holds the short names defined in Code; generation skips
	// them to avoid duplicate definitions.
	Methods map[string]bool
}

// ParseFile reads an override file. A missing file is not an error:
// overrides are optional, so it yields an empty map.
func ParseFile(path string) (map[string]*Record, error) {
	if path == "" {
		return map[string]*Record{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Record{}, nil
		}
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads override records from r.
func Parse(r io.Reader) (map[string]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read override source: %w", err)
	}

	bodies := map[string]string{}
	current := ""
	var body strings.Builder
	for _, line := range strings.SplitAfter(string(data), "\n") {
		if m := classRe.FindStringSubmatch(line); m != nil {
			if current != "" {
				bodies[current] = body.String()
			}
			current = m[1]
			body.Reset()
			continue
		}
		body.WriteString(line)
	}
	if current != "" {
		bodies[current] = body.String()
	}

	records := make(map[string]*Record, len(bodies))
	for name, code := range bodies {
		rec := &Record{Methods: map[string]bool{}}
		if strings.HasPrefix(strings.TrimLeft(code, " \t\n"), `"""`) {
			// Leading triple-quoted literal is the class docstring.
			parts := strings.SplitN(code, `"""`, 3)
			if len(parts) == 3 {
				rec.Docstring = parts[1]
				code = parts[2]
			}
		}
		rec.Code = code
		for _, m := range defRe.FindAllStringSubmatch(code, -1) {
			rec.Methods[m[1]] = true
		}
		records[name] = rec
	}
	return records, nil
}
