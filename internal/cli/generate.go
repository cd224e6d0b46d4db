package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopykens/python-vlc/internal/config"
	"github.com/gopykens/python-vlc/internal/generator"
	"github.com/gopykens/python-vlc/internal/override"
	"github.com/gopykens/python-vlc/internal/parser"
	"github.com/gopykens/python-vlc/internal/typemap"
	"github.com/gopykens/python-vlc/internal/wrapper"
)

var (
	genOutput   string
	genBackend  string
	genOverride string
	genHeader   string
	genFooter   string
	genBoiler   string
)

var generateCmd = &cobra.Command{
	Use:   "generate <include-file> [...]",
	Short: "Generate binding source from tagged header declarations",
	Long: `Parse the given include files and emit binding source.

The python backend writes one stream (a file, or stdout with -o -). The
java backend treats -o as an output directory and writes one file per
enum plus LibVlc.java.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output filename (python) or directory (java), - for stdout")
	generateCmd.Flags().StringVar(&genBackend, "backend", "", "Target backend: python or java")
	generateCmd.Flags().StringVar(&genOverride, "override", "", "Override definitions file (python backend)")
	generateCmd.Flags().StringVar(&genHeader, "header", "", "Header boilerplate file")
	generateCmd.Flags().StringVar(&genFooter, "footer", "", "Footer boilerplate file")
	generateCmd.Flags().StringVar(&genBoiler, "boilerplate", "", "Per-file boilerplate (java backend)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := parser.ParseFiles(args)
	if err != nil {
		return err
	}

	blacklist := buildBlacklist(cfg)

	switch cfg.Backend {
	case "java":
		return generateJava(cfg, p, blacklist)
	default:
		return generatePython(cfg, p, blacklist)
	}
}

func applyGenerateFlags(cfg *config.Config) {
	if genBackend != "" {
		cfg.Backend = genBackend
	}
	if genOutput != "" {
		cfg.Output = genOutput
	}
	if genOverride != "" {
		cfg.Python.Override = genOverride
	}
	if genHeader != "" {
		cfg.Python.Header = genHeader
		cfg.Java.Header = genHeader
	}
	if genFooter != "" {
		cfg.Python.Footer = genFooter
		cfg.Java.Footer = genFooter
	}
	if genBoiler != "" {
		cfg.Java.Boilerplate = genBoiler
	}
}

func buildBlacklist(cfg *config.Config) map[string]bool {
	blacklist := make(map[string]bool, len(generator.DefaultBlacklist)+len(cfg.Blacklist))
	for name := range generator.DefaultBlacklist {
		blacklist[name] = true
	}
	for _, name := range cfg.Blacklist {
		blacklist[name] = true
	}
	return blacklist
}

func generatePython(cfg *config.Config, p *parser.Parser, blacklist map[string]bool) error {
	table, err := typemap.Build(generator.PythonTypes, p.Enums, generator.PythonNameRules)
	if err != nil {
		return err
	}
	if err := table.Check(p.Funcs, blacklist); err != nil {
		return err
	}

	overrides, err := override.ParseFile(cfg.Python.Override)
	if err != nil {
		return err
	}
	plan := wrapper.BuildPlan(p.Funcs, table, generator.PythonObjectClasses, blacklist, overrides)

	g := &generator.Python{
		Funcs:      p.Funcs,
		Enums:      p.Enums,
		Table:      table,
		Plan:       plan,
		Blacklist:  blacklist,
		HeaderPath: cfg.Python.Header,
		FooterPath: cfg.Python.Footer,
		BuildDate:  generator.BuildDate(),
	}

	if cfg.Output == "" || cfg.Output == "-" {
		return g.Save(os.Stdout)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.Output, err)
	}
	if err := g.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	return nil
}

func generateJava(cfg *config.Config, p *parser.Parser, blacklist map[string]bool) error {
	table, err := typemap.Build(generator.JavaTypes, p.Enums, generator.JavaNameRules)
	if err != nil {
		return err
	}
	if err := table.Check(p.Funcs, blacklist); err != nil {
		return err
	}

	g := &generator.Java{
		Funcs:           p.Funcs,
		Enums:           p.Enums,
		Table:           table,
		Blacklist:       blacklist,
		BoilerplatePath: cfg.Java.Boilerplate,
		HeaderPath:      cfg.Java.Header,
		FooterPath:      cfg.Java.Footer,
		Package:         cfg.Java.Package,
		BuildDate:       generator.BuildDate(),
	}
	return g.Save(cfg.Output)
}
