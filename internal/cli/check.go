package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopykens/python-vlc/internal/parser"
)

// checkCmd audits the recovered declarations without emitting anything:
// it reports functions whose documentation is missing or whose \param
// tag count disagrees with the actual parameter count.
var checkCmd = &cobra.Command{
	Use:   "check <include-file> [...]",
	Short: "Report missing or inconsistent declaration documentation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parser.ParseFiles(args)
		if err != nil {
			return err
		}
		for _, fn := range p.Funcs {
			if strings.TrimSpace(fn.DocComment) == "" {
				fmt.Printf("No comment for %s\n", fn.Name)
				continue
			}
			if len(parser.DocParamNames(fn.DocComment)) != len(fn.Params) {
				fmt.Printf("Docstring comment parameters mismatch for %s\n", fn.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
