package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eyelash/superscript/internal/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a superscript file",
	Long: `Parse, type-check, and interpret a superscript program. Execution
enters through the main function; its result is printed when main
returns a value.

Examples:
  # Run a program
  superscript run program.ss`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	program, _, err := loadAndCheck(args[0])
	if err != nil {
		return err
	}

	result, err := interp.New(program).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	if _, isNull := result.(interp.Null); !isNull {
		fmt.Println(result.Inspect())
	}
	return nil
}
