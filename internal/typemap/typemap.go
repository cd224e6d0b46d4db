// Package typemap builds the per-backend translation tables from C type
// tokens to target type descriptors. Tables are built in two phases:
// the backend's fixed base table plus one generated entry per discovered
// enum, after which the table is read-only. Every lookup performed
// during emission is validated once, eagerly, by Check.
package typemap

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gopykens/python-vlc/internal/parser"
)

// NameRules controls how enum type names convert to target identifiers.
type NameRules struct {
	// SuffixRe extracts the domain stem, e.g. libvlc_(.+?)(_t)?$.
	SuffixRe *regexp.Regexp
	// Special maps full enum names straight to fixed identifiers.
	Special map[string]string
}

// Table is an immutable mapping from C type tokens to target types.
type Table struct {
	classes map[string]string
}

// Build copies the backend base table and adds one entry per enum.
// Routing anything but an enum here is a pipeline contract violation,
// not malformed input.
func Build(base map[string]string, enums []*parser.EnumDecl, rules NameRules) (Table, error) {
	classes := make(map[string]string, len(base)+len(enums))
	for k, v := range base {
		classes[k] = v
	}
	for _, e := range enums {
		if e.Kind != "enum" {
			return Table{}, fmt.Errorf("cannot build type table from %s declaration %s", e.Kind, e.Name)
		}
		classes[e.Name] = ConvertEnumName(e.Name, rules)
	}
	return Table{classes: classes}, nil
}

// Lookup resolves a C type token.
func (t Table) Lookup(typ string) (string, bool) {
	v, ok := t.classes[typ]
	return v, ok
}

// Get resolves a C type token that Check has already validated.
func (t Table) Get(typ string) string {
	return t.classes[typ]
}

// Each calls fn for every (token, target) pair. Iteration order is not
// defined; callers needing determinism must sort.
func (t Table) Each(fn func(token, target string)) {
	for k, v := range t.classes {
		fn(k, v)
	}
}

// Check verifies that the return type and every parameter type of each
// retained function has a table entry. It runs before any emission and
// names the offending type, function and parameter on failure.
func (t Table) Check(funcs []*parser.FuncDecl, blacklist map[string]bool) error {
	for _, fn := range funcs {
		if blacklist[fn.Name] {
			continue
		}
		if _, ok := t.classes[fn.ReturnType]; !ok {
			return fmt.Errorf("no conversion for %s (from %s: return type)", fn.ReturnType, fn.Name)
		}
		for _, p := range fn.Params {
			if _, ok := t.classes[p.Type]; !ok {
				return fmt.Errorf("no conversion for %s (from %s:%s)", p.Type, fn.Name, p.Name)
			}
		}
	}
	return nil
}

// ConvertEnumName derives the target identifier for an enum type name:
// the domain prefix and type suffix are stripped, separated stems become
// a capitalized compound, plain lowercase stems get their first letter
// capitalized.
func ConvertEnumName(name string, rules NameRules) string {
	if s, ok := rules.Special[name]; ok {
		return s
	}
	stem := name
	if m := rules.SuffixRe.FindStringSubmatch(name); m != nil {
		stem = m[1]
	}
	if strings.Contains(stem, "_") {
		return titleCompound(stem)
	}
	r := []rune(stem)
	if len(r) > 0 && !unicode.IsUpper(r[0]) {
		r[0] = unicode.ToUpper(r[0])
		for i := 1; i < len(r); i++ {
			r[i] = unicode.ToLower(r[i])
		}
	}
	return string(r)
}

// titleCompound turns media_list_view into MediaListView.
func titleCompound(stem string) string {
	parts := strings.Split(stem, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		for i := 1; i < len(r); i++ {
			r[i] = unicode.ToLower(r[i])
		}
		b.WriteString(string(r))
	}
	return b.String()
}
