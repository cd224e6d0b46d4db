package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// AnonymousEnumName is the fallback name for enums declared without one.
const AnonymousEnumName = "libvlc_enum_t"

var (
	apiRe       = regexp.MustCompile(`^VLC_PUBLIC_API\s+(\S+\s+.+?)\s*\(\s*(.+?)\s*\)`)
	paramRe     = regexp.MustCompile(`\s*(const\s*|unsigned\s*|struct\s*)?(\S+\s*\**)\s+(.+)`)
	paramListRe = regexp.MustCompile(`\s*,\s*`)
	docParamRe  = regexp.MustCompile(`\\param\s+(\S+)`)
	forwardRe   = regexp.MustCompile(`.+\(\s*(.+?)\s*\)(\s*\S+)`)
	enumRe      = regexp.MustCompile(`^(?:typedef\s+)?enum\s*(\S+)?\s*\{\s*(.+)\s*\}\s*(?:\S+)?;`)
	eqRe        = regexp.MustCompile(`\s*=\s*`)
)

// Parser holds every function and enum recovered from the input headers.
type Parser struct {
	Funcs []*FuncDecl
	Enums []*EnumDecl
}

// ParseFiles parses a list of header files in order.
func ParseFiles(paths []string) (*Parser, error) {
	p := &Parser{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		units, err := Scan(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		p.classify(units)
	}
	return p, nil
}

// Parse parses a single header source.
func Parse(r io.Reader) (*Parser, error) {
	units, err := Scan(r)
	if err != nil {
		return nil, err
	}
	p := &Parser{}
	p.classify(units)
	return p, nil
}

// classify matches each unit against the enum and function shapes.
// Units matching neither are discarded.
func (p *Parser) classify(units []*Unit) {
	for _, u := range units {
		enum, err := parseEnum(u)
		if err != nil {
			log.Warn().Str("declaration", u.Text).Err(err).Msg("dropping malformed enum")
			continue
		}
		if enum != nil {
			p.Enums = append(p.Enums, enum)
			continue
		}
		if fn := parseFunc(u); fn != nil {
			p.Funcs = append(p.Funcs, fn)
		}
	}
}

// parseEnum matches an enum typedef. It returns (nil, nil) when the unit
// is not an enum, and an error when a member value cannot be decoded.
//
// Members without an explicit value take the running counter, which
// starts at 0 and continues from the last value (explicit or not) plus
// one. Values are recorded as written; hex stays hex.
func parseEnum(u *Unit) (*EnumDecl, error) {
	m := enumRe.FindStringSubmatch(u.Text)
	if m == nil {
		return nil, nil
	}
	name, data := m[1], m[2]

	var members []*EnumMember
	val := 0
	for _, item := range paramListRe.Split(data, -1) {
		item = strings.TrimSpace(item)
		if strings.HasPrefix(item, "/*") {
			// Trailing comment fragment inside the member list.
			continue
		}
		if strings.Contains(item, "=") {
			parts := eqRe.Split(item, 2)
			sym, v := parts[0], parts[1]
			members = append(members, &EnumMember{Symbol: sym, Value: v})
			n, err := parseEnumValue(v)
			if err != nil {
				return nil, fmt.Errorf("cannot decode value %q of %s: %w", v, sym, err)
			}
			val = n
		} else if item != "" {
			members = append(members, &EnumMember{Symbol: item, Value: strconv.Itoa(val)})
		}
		val++
	}

	if name == "" {
		name = AnonymousEnumName
	}
	return &EnumDecl{
		Kind:       "enum",
		Name:       name,
		Members:    members,
		DocComment: cleanEnumDoc(u.Doc),
	}, nil
}

func parseEnumValue(v string) (int, error) {
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		n, err := strconv.ParseInt(v[2:], 16, 64)
		return int(n), err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return int(n), err
}

// cleanEnumDoc normalizes an enum documentation block: drop a trailing
// comment closer, trim, capitalize the first letter and end with exactly
// one period.
func cleanEnumDoc(doc string) string {
	doc = strings.TrimSpace(doc)
	doc = strings.TrimSuffix(doc, "*/")
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	r := []rune(doc)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimRight(string(r), ".") + "."
}

// parseFunc matches a tagged prototype. Returns nil when the unit does
// not match.
func parseFunc(u *Unit) *FuncDecl {
	m := apiRe.FindStringSubmatch(u.Text)
	if m == nil {
		return nil
	}

	rtype, name := ParseParamExpr(m[1])

	var params []*Param
	for _, s := range paramListRe.Split(m[2], -1) {
		typ, pname := ParseParamExpr(s)
		params = append(params, &Param{Type: typ, Name: pname})
	}
	if len(params) == 1 && params[0].Type == "void" {
		// Empty parameter list spelled as (void).
		params = nil
	}

	recoverParamNames(name, params, u.Doc)

	return &FuncDecl{
		ReturnType: rtype,
		Name:       name,
		Params:     params,
		DocComment: u.Doc,
	}
}

// ParseParamExpr parses a C parameter expression into (type, name).
// It serves both the return-type/name expression of a prototype and
// each of its parameters.
func ParseParamExpr(s string) (typ, name string) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "const", "")
	if strings.Contains(s, "VLC_FORWARD") {
		// Forwarding macro: substitute its parenthesized argument and
		// the tokens following it, then parse the result.
		if m := forwardRe.FindStringSubmatch(s); m != nil {
			s = m[1] + m[2]
		}
	}
	if m := paramRe.FindStringSubmatch(s); m != nil {
		typ, name = m[2], m[3]
		// Stars written against the name bind to the type.
		for strings.HasPrefix(name, "*") {
			typ += "*"
			name = name[1:]
		}
		if name == "const*" {
			// K&R definition: const char * const*
			name = ""
		}
		return strings.ReplaceAll(typ, " ", ""), name
	}
	// K&R definition: only a type, no name.
	return strings.ReplaceAll(s, " ", ""), ""
}

// DocParamNames returns the \param tag names of a documentation block,
// in order of appearance.
func DocParamNames(doc string) []string {
	var names []string
	for _, m := range docParamRe.FindAllStringSubmatch(doc, -1) {
		names = append(names, m[1])
	}
	return names
}

// recoverParamNames fills empty parameter names from the documentation's
// \param tags, in declaration order. When the tags do not cover every
// parameter, positional param<i> placeholders fill the gaps and the
// defect is reported without halting generation.
func recoverParamNames(fn string, params []*Param, doc string) {
	missing := false
	for _, p := range params {
		if p.Name == "" {
			missing = true
			break
		}
	}
	if !missing {
		return
	}

	names := DocParamNames(doc)
	if len(names) < len(params) {
		filled := make([]string, len(params))
		for i := range filled {
			filled[i] = fmt.Sprintf("param%d", i)
		}
		copy(filled, names)
		names = filled
		log.Warn().
			Str("function", fn).
			Str("doc", strings.ReplaceAll(doc, "\n", " ")).
			Msg("cannot recover parameter names from comment")
	}
	for i, p := range params {
		p.Name = names[i]
	}
}
