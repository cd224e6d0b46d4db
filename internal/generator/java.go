package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gopykens/python-vlc/internal/parser"
	"github.com/gopykens/python-vlc/internal/typemap"
)

// JavaTypes is the fixed C-type to JNA translation table.
var JavaTypes = map[string]string{
	"libvlc_media_player_t*":      "LibVlcMediaPlayer",
	"libvlc_instance_t*":          "LibVlcInstance",
	"libvlc_media_t*":             "LibVlcMedia",
	"libvlc_log_t*":               "LibVlcLog",
	"libvlc_log_iterator_t*":      "LibVlcLogIterator",
	"libvlc_log_message_t*":       "libvlc_log_message_t",
	"libvlc_event_type_t":         "int",
	"libvlc_event_manager_t*":     "LibVlcEventManager",
	"libvlc_media_discoverer_t*":  "LibVlcMediaDiscoverer",
	"libvlc_media_library_t*":     "LibVlcMediaLibrary",
	"libvlc_media_list_t*":        "LibVlcMediaList",
	"libvlc_media_list_player_t*": "LibVlcMediaListPlayer",
	"libvlc_media_list_view_t*":   "LibVlcMediaListView",
	"libvlc_media_stats_t*":       "LibVlcMediaStats",
	"libvlc_media_track_info_t**": "LibVlcMediaTrackInfo",
	"libvlc_exception_t*":         "Pointer",

	"libvlc_track_description_t*": "LibVlcTrackDescription",
	"libvlc_audio_output_t*":      "LibVlcAudioOutput",

	"void":              "void",
	"void*":             "Pointer",
	"short":             "short",
	"char*":             "String",
	"char**":            "String[]",
	"uint32_t":          "uint32",
	"float":             "float",
	"unsigned":          "int",
	"unsigned*":         "Pointer",
	"int":               "int",
	"int*":              "Pointer",
	"...":               "FIXMEva_list",
	"libvlc_callback_t": "LibVlcCallback",
	"libvlc_time_t":     "long",
}

// JavaNameRules converts enum type names for the java backend. The
// suffix pattern also tolerates the _e variant some enums carry.
var JavaNameRules = typemap.NameRules{
	SuffixRe: regexp.MustCompile(`libvlc_(.+?)(_[te])?$`),
}

// Java renders the per-artifact JNA backend: one file per enum plus the
// aggregate LibVlc.java interface.
type Java struct {
	Funcs     []*parser.FuncDecl
	Enums     []*parser.EnumDecl
	Table     typemap.Table
	Blacklist map[string]bool

	BoilerplatePath string
	HeaderPath      string
	FooterPath      string
	Package         string
	BuildDate       string
}

// Save writes every artifact into dirname, creating it if needed.
func (g *Java) Save(dirname string) error {
	if dirname == "" || dirname == "-" {
		dirname = "internal"
	}
	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dirname, err)
	}
	log.Info().Str("dir", dirname).Msg("generating java code")

	if err := g.writeEnums(dirname); err != nil {
		return err
	}
	return g.writeLibVlc(dirname)
}

func (g *Java) stampLine() string {
	return fmt.Sprintf("build_date=\"%s\";", g.BuildDate)
}

// writeEnums emits one independently openable file per enum.
func (g *Java) writeEnums(dirname string) error {
	for _, e := range g.Enums {
		javaName := g.Table.Get(e.Name)

		var sb strings.Builder
		if err := spliceBoilerplate(&sb, g.BoilerplatePath, g.stampLine(), nil); err != nil {
			return err
		}
		fmt.Fprintf(&sb, "package %s;\n\n\npublic enum %s\n{\n\n", g.Package, javaName)
		for _, m := range e.Members {
			fmt.Fprintf(&sb, "        %s (%s),\n", m.Symbol, m.Value)
		}
		sb.WriteString("\n")
		sb.WriteString("        private final int _value;\n")
		fmt.Fprintf(&sb, "        %s(int value) { this._value = value; }\n", javaName)
		sb.WriteString("        public int value() { return this._value; }\n")
		sb.WriteString("}\n")

		path := filepath.Join(dirname, javaName+".java")
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// writeLibVlc emits the aggregate interface file: boilerplate, header
// splice, PointerType holder classes, one declaration per retained
// function, footer splice.
func (g *Java) writeLibVlc(dirname string) error {
	var sb strings.Builder
	if err := spliceBoilerplate(&sb, g.BoilerplatePath, g.stampLine(), nil); err != nil {
		return err
	}
	if err := spliceBoilerplate(&sb, g.HeaderPath, g.stampLine(), nil); err != nil {
		return err
	}

	g.writePointerTypes(&sb)

	for _, fn := range g.Funcs {
		if g.Blacklist[fn.Name] {
			continue
		}
		var params []string
		for _, p := range fn.Params {
			params = append(params, fmt.Sprintf("%s %s", g.Table.Get(p.Type), p.Name))
		}
		fmt.Fprintf(&sb, "%s %s(%s);\n\n", g.Table.Get(fn.ReturnType), fn.Name, strings.Join(params, ", "))
	}

	if err := spliceBoilerplate(&sb, g.FooterPath, g.stampLine(), nil); err != nil {
		return err
	}

	path := filepath.Join(dirname, "LibVlc.java")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writePointerTypes declares a PointerType holder for every opaque
// pointer the table maps onto a LibVlc class, in deterministic order.
func (g *Java) writePointerTypes(sb *strings.Builder) {
	var names []string
	g.Table.Each(func(token, target string) {
		if strings.HasSuffix(token, "*") && strings.HasPrefix(target, "LibVlc") {
			names = append(names, target)
		}
	})
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(sb, "    public class %s extends PointerType\n    {\n    }\n\n", n)
	}
}
