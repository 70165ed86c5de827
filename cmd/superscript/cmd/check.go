package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eyelash/superscript/internal/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a superscript file",
	Long: `Parse and type-check a superscript program without generating code.
Prints "success" when the program is well-typed.`,
	Args: cobra.ExactArgs(1),
	RunE: checkFile,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(_ *cobra.Command, args []string) error {
	if _, _, err := loadAndCheck(args[0]); err != nil {
		return err
	}
	fmt.Println(errors.Success(stdoutIsTerminal()))
	return nil
}
