package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopykens/python-vlc/internal/parser"
)

// dumpCmd prints every recovered function and enum, for debugging the
// declaration recovery itself.
var dumpCmd = &cobra.Command{
	Use:   "dump <include-file> [...]",
	Short: "Print every recovered declaration without generating code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parser.ParseFiles(args)
		if err != nil {
			return err
		}
		fmt.Println("** Defined functions **")
		for _, fn := range p.Funcs {
			fmt.Printf("%s (%s):\n", fn.Name, fn.ReturnType)
			for _, param := range fn.Params {
				fmt.Printf("    %s (%s)\n", param.Name, param.Type)
			}
		}
		fmt.Println("** Defined enums **")
		for _, e := range p.Enums {
			fmt.Printf("%s (%s):\n", e.Name, e.Kind)
			for _, m := range e.Members {
				fmt.Printf("    %s=%s\n", m.Symbol, m.Value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
