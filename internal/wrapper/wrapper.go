// Package wrapper plans the object-method wrapping of free functions:
// functions whose first parameter maps to a designated object type are
// grouped into classes, their names shortened by stripping the per-class
// prefix, and each method classified once by the capability its name
// convention implies.
package wrapper

import (
	"sort"
	"strings"

	"github.com/gopykens/python-vlc/internal/override"
	"github.com/gopykens/python-vlc/internal/parser"
	"github.com/gopykens/python-vlc/internal/typemap"
)

// DomainPrefix is stripped from every method name after the class prefix.
const DomainPrefix = "libvlc_"

// SelfName is the fixed self-reference token the first parameter is
// renamed to.
const SelfName = "self"

// Capability tags what a method name convention implies, decided once
// during planning.
type Capability int

const (
	// Plain methods only delegate.
	Plain Capability = iota
	// Sized methods (exact name "count") also provide the class length.
	Sized
	// Indexable methods (suffix "item_at_index") also provide indexed
	// access and forward iteration.
	Indexable
)

// Method is one wrapped function within a class.
type Method struct {
	ShortName  string
	Capability Capability
	Fn         *parser.FuncDecl
}

// Class groups the methods anchored on one object type.
type Class struct {
	Name     string
	Prefix   string
	Methods  []*Method
	Override *override.Record // nil when no override material exists
}

// Plan is the complete wrapping outcome for one backend.
type Plan struct {
	Classes []*Class
	// Wrapped records every function name that found a home in a class,
	// including ones suppressed by an override.
	Wrapped map[string]bool
}

// BuildPlan groups eligible functions into wrapper classes. A function
// is eligible iff it has at least one parameter and the mapped type of
// its first parameter is one of objectClasses. Classes are ordered by
// name; methods keep their declaration order. Blacklisted functions are
// excluded entirely.
func BuildPlan(funcs []*parser.FuncDecl, table typemap.Table, objectClasses []string,
	blacklist map[string]bool, overrides map[string]*override.Record) *Plan {

	objects := make(map[string]bool, len(objectClasses))
	for _, c := range objectClasses {
		objects[c] = true
	}

	byClass := map[string]*Class{}
	plan := &Plan{Wrapped: map[string]bool{}}

	for _, fn := range funcs {
		if blacklist[fn.Name] || len(fn.Params) == 0 {
			continue
		}
		className, ok := table.Lookup(fn.Params[0].Type)
		if !ok || !objects[className] {
			continue
		}

		cl := byClass[className]
		if cl == nil {
			cl = &Class{
				Name: className,
				// The anchor type token always carries the t* suffix;
				// what remains is the method name prefix.
				Prefix:   strings.TrimSuffix(fn.Params[0].Type, "t*"),
				Override: overrides[className],
			}
			byClass[className] = cl
			plan.Classes = append(plan.Classes, cl)
		}

		plan.Wrapped[fn.Name] = true

		short := strings.ReplaceAll(fn.Name, cl.Prefix, "")
		short = strings.ReplaceAll(short, DomainPrefix, "")
		if cl.Override != nil && cl.Override.Methods[short] {
			// Hand-written override supersedes the generated method.
			continue
		}

		cl.Methods = append(cl.Methods, &Method{
			ShortName:  short,
			Capability: classify(short),
			Fn:         fn,
		})
	}

	sort.Slice(plan.Classes, func(i, j int) bool {
		return plan.Classes[i].Name < plan.Classes[j].Name
	})
	return plan
}

func classify(short string) Capability {
	switch {
	case short == "count":
		return Sized
	case strings.HasSuffix(short, "item_at_index"):
		return Indexable
	default:
		return Plain
	}
}

// ForwardedArgs lists the argument names a wrapper method passes to the
// underlying call: the self reference first, then every parameter not
// classified as output-only.
func (m *Method) ForwardedArgs() []string {
	args := []string{SelfName}
	for _, p := range m.Fn.Params[1:] {
		if typemap.DirectionOf(p.Type) != typemap.Out {
			args = append(args, p.Name)
		}
	}
	return args
}
