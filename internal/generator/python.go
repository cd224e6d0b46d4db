package generator

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/gopykens/python-vlc/internal/parser"
	"github.com/gopykens/python-vlc/internal/typemap"
	"github.com/gopykens/python-vlc/internal/wrapper"
)

// PythonTypes is the fixed C-type to ctypes translation table. Enum
// entries are generated on top of it (see typemap.Build).
var PythonTypes = map[string]string{
	"libvlc_media_player_t*":      "MediaPlayer",
	"libvlc_instance_t*":          "Instance",
	"libvlc_media_t*":             "Media",
	"libvlc_log_t*":               "Log",
	"libvlc_log_iterator_t*":      "LogIterator",
	"libvlc_log_message_t*":       "ctypes.POINTER(LogMessage)",
	"libvlc_event_type_t":         "ctypes.c_uint",
	"libvlc_event_manager_t*":     "EventManager",
	"libvlc_media_discoverer_t*":  "MediaDiscoverer",
	"libvlc_media_library_t*":     "MediaLibrary",
	"libvlc_media_list_t*":        "MediaList",
	"libvlc_media_list_player_t*": "MediaListPlayer",
	"libvlc_media_list_view_t*":   "MediaListView",
	"libvlc_track_description_t*": "ctypes.POINTER(TrackDescription)",
	"libvlc_audio_output_t*":      "ctypes.POINTER(AudioOutput)",
	"libvlc_media_stats_t*":       "ctypes.POINTER(MediaStats)",
	"libvlc_media_track_info_t**": "ctypes.POINTER(ctypes.POINTER(MediaTrackInfo))",
	"libvlc_exception_t*":         "ctypes.POINTER(VLCException)",

	"libvlc_drawable_t":   "ctypes.c_uint",
	"libvlc_rectangle_t*": "ctypes.POINTER(Rectangle)",

	"WINDOWHANDLE": "ctypes.c_ulong",

	"void":              "None",
	"void*":             "ctypes.c_void_p",
	"short":             "ctypes.c_short",
	"char*":             "ctypes.c_char_p",
	"char**":            "ListPOINTER(ctypes.c_char_p)",
	"uint32_t":          "ctypes.c_uint32",
	"int64_t":           "ctypes.c_int64",
	"float":             "ctypes.c_float",
	"unsigned":          "ctypes.c_uint",
	"unsigned*":         "ctypes.POINTER(ctypes.c_uint)",
	"int":               "ctypes.c_int",
	"int*":              "ctypes.POINTER(ctypes.c_int)",
	"...":               "FIXME_va_list",
	"libvlc_callback_t": "ctypes.c_void_p",
	"libvlc_time_t":     "ctypes.c_longlong",
}

// PythonObjectClasses are the target types eligible to anchor a wrapper
// class.
var PythonObjectClasses = []string{
	"MediaPlayer",
	"Instance",
	"Media",
	"Log",
	"LogIterator",
	"EventManager",
	"MediaDiscoverer",
	"MediaLibrary",
	"MediaList",
	"MediaListPlayer",
	"MediaListView",
}

// PythonNameRules converts enum type names for the python backend.
// libvlc_event_e is reserved for the primary event-kind enumeration.
var PythonNameRules = typemap.NameRules{
	SuffixRe: regexp.MustCompile(`libvlc_(.+?)(_t)?$`),
	Special:  map[string]string{"libvlc_event_e": "EventType"},
}

// Python renders the combined-stream ctypes backend.
type Python struct {
	Funcs     []*parser.FuncDecl
	Enums     []*parser.EnumDecl
	Table     typemap.Table
	Plan      *wrapper.Plan
	Blacklist map[string]bool

	HeaderPath string
	FooterPath string
	BuildDate  string // stamped into the header; the only varying output
}

// Save writes the full python module: preamble (with the enum block
// spliced at its marker), function bindings, wrapper classes, postamble,
// and the summary of functions no class claimed.
func (g *Python) Save(w io.Writer) error {
	stamp := fmt.Sprintf("build_date=\"%s\"", g.BuildDate)
	if err := spliceBoilerplate(w, g.HeaderPath, stamp, g.writeEnums); err != nil {
		return err
	}

	var unwrapped []string
	for _, fn := range g.Funcs {
		if g.Blacklist[fn.Name] {
			continue
		}
		if err := g.writeBinding(w, fn); err != nil {
			return err
		}
		if !g.Plan.Wrapped[fn.Name] {
			unwrapped = append(unwrapped, "#  "+fn.Name)
		}
	}

	for _, cl := range g.Plan.Classes {
		if err := g.writeClass(w, cl); err != nil {
			return err
		}
	}

	if err := spliceBoilerplate(w, g.FooterPath, stamp, nil); err != nil {
		return err
	}

	if len(unwrapped) > 0 {
		sort.Strings(unwrapped)
		if _, err := fmt.Fprintf(w, "# %d methods not wrapped :\n%s\n",
			len(unwrapped), strings.Join(unwrapped, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// writeEnums emits the _Enum base class and one subclass per enum.
// Each section is rendered in memory and written once, so a writer
// failure surfaces instead of truncating the stream.
func (g *Python) writeEnums(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(`
class _Enum(ctypes.c_ulong):
    '''Base class
    '''
    _names={}

    def __str__(self):
        n=self._names.get(self.value, '') or ('FIXME_(%r)' % (self.value,))
        return '.'.join((self.__class__.__name__, n))

    def __repr__(self):
        return '.'.join((self.__class__.__module__, self.__str__()))

    def __eq__(self, other):
        return ( (isinstance(other, _Enum)       and self.value == other.value)
              or (isinstance(other, (int, long)) and self.value == other) )

    def __ne__(self, other):
        return not self.__eq__(other)
`)

	for _, e := range g.Enums {
		name := g.Table.Get(e.Name)
		fmt.Fprintf(&sb, "class %s(_Enum):\n", name)
		fmt.Fprintf(&sb, "    \"\"\"%s\n    \"\"\"\n", e.DocComment)
		sb.WriteString("    _names={\n")
		var assigns []string
		for _, m := range e.Members {
			attr := shortenSymbol(m.Symbol)
			fmt.Fprintf(&sb, "        %s: '%s',\n", m.Value, attr)
			assigns = append(assigns, fmt.Sprintf("%s.%s=%s(%s)", name, attr, name, m.Value))
		}
		sb.WriteString("    }\n")
		sort.Strings(assigns)
		for _, a := range assigns {
			sb.WriteString(a + "\n")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// shortenSymbol derives the attribute name from an enum symbol: the last
// underscore component, or the last two when the last is a single
// character (audio channel names like 5_1), prefixed with an underscore
// when it would start with a digit.
func shortenSymbol(symbol string) string {
	parts := strings.Split(symbol, "_")
	n := parts[len(parts)-1]
	if len(n) <= 1 && len(parts) >= 2 {
		n = strings.Join(parts[len(parts)-2:], "_")
	}
	if n != "" && unicode.IsDigit(rune(n[0])) {
		n = "_" + n
	}
	return n
}

// writeBinding emits the hasattr-guarded ctypes declaration for one
// function together with its argument direction flags.
func (g *Python) writeBinding(w io.Writer, fn *parser.FuncDecl) error {
	args := []string{g.Table.Get(fn.ReturnType)}
	var flags []string
	for _, p := range fn.Params {
		args = append(args, g.Table.Get(p.Type))
		flags = append(flags, fmt.Sprintf("(%d,)", typemap.DirectionOf(p.Type)))
	}
	flagStr := strings.Join(flags, ", ")
	if flagStr != "" {
		flagStr += ","
	}

	_, err := fmt.Fprintf(w, `if hasattr(dll, '%[1]s'):
    p = ctypes.CFUNCTYPE(%[2]s)
    f = (%[3]s)
    %[1]s = p( ('%[1]s', dll), f )
    %[1]s.__doc__ = """%[4]s
"""

`, fn.Name, strings.Join(args, ", "), flagStr, EpydocComment(fn.DocComment, false))
	return err
}

func (g *Python) writeClass(w io.Writer, cl *wrapper.Class) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "class %s(object):\n", cl.Name)
	if cl.Override != nil && cl.Override.Docstring != "" {
		fmt.Fprintf(&sb, "    \"\"\"%s\n    \"\"\"\n", strings.TrimSpace(cl.Override.Docstring))
	}

	if cl.Override == nil || !strings.Contains(cl.Override.Code, "def __new__") {
		sb.WriteString(`
    def __new__(cls, pointer=None):
        '''Internal method used for instanciating wrappers from ctypes.
        '''
        if pointer is None:
            raise Exception("Internal method. Surely this class cannot be instanciated by itself.")
        if pointer == 0:
            return None
        o=object.__new__(cls)
        o._as_parameter_=ctypes.c_void_p(pointer)
        return o
`)
	}

	sb.WriteString(`
    @staticmethod
    def from_param(arg):
        '''(INTERNAL) ctypes parameter conversion method.
        '''
        return arg._as_parameter_
`)

	if cl.Override != nil && cl.Override.Code != "" {
		sb.WriteString(cl.Override.Code)
	}

	for _, m := range cl.Methods {
		args := strings.Join(m.ForwardedArgs(), ", ")
		fmt.Fprintf(&sb, `    if hasattr(dll, '%[1]s'):
        def %[2]s(%[3]s):
            """%[4]s
            """
            return %[1]s(%[3]s)

`, m.Fn.Name, m.ShortName, args, EpydocComment(m.Fn.DocComment, true))

		switch m.Capability {
		case wrapper.Sized:
			fmt.Fprintf(&sb, "    def __len__(self):\n        return %s(self)\n\n", m.Fn.Name)
		case wrapper.Indexable:
			fmt.Fprintf(&sb, `    def __getitem__(self, i):
        return %s(self, i)

    def __iter__(self):
        for i in xrange(len(self)):
            yield self[i]

`, m.Fn.Name)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
