package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eyelash/superscript/internal/codegen"
	"github.com/eyelash/superscript/pkg/printer"
)

var compileOutput string

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a superscript file to JavaScript",
	Long: `Parse and type-check a superscript program, then emit equivalent
JavaScript to standard output (or a file with -o).

Examples:
  # Compile a program to stdout
  superscript compile program.ss

  # Compile into a file
  superscript compile program.ss -o program.js`,
	Args: cobra.ExactArgs(1),
	RunE: compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: stdout)")
}

func compileFile(_ *cobra.Command, args []string) error {
	program, _, err := loadAndCheck(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if compileOutput != "" {
		f, err := os.Create(compileOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := codegen.Generate(printer.New(out), program); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
