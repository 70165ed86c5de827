package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/eyelash/superscript/internal/ast"
	"github.com/eyelash/superscript/internal/parser"
	"github.com/eyelash/superscript/internal/semantic"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "superscript",
	Short: "superscript compiler",
	Long: `superscript is a compiler for a small statically typed,
JavaScript-flavored language: functions, classes, numbers, booleans,
if/while/return, and method dispatch through this.

It type-checks a source file and emits equivalent JavaScript, or runs
the program directly through a tree-walking interpreter.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invoking with a bare file path compiles it to stdout.
		if len(args) == 1 {
			return compileFile(cmd, args)
		}
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// stderrIsTerminal decides whether diagnostics get ANSI colors.
func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// stdoutIsTerminal decides whether the success marker gets ANSI colors.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// loadAndCheck reads, parses, and type-checks one source file. Compile
// errors are printed to stderr as caret diagnostics; the returned error is
// only a process-exit signal.
func loadAndCheck(filename string) (*ast.Program, string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, "", err
	}
	source := string(content)

	program, parseErr := parser.New(source).ParseProgram()
	if parseErr != nil {
		fmt.Fprint(os.Stderr, parseErr.Format(source, stderrIsTerminal()))
		return nil, "", parseErr
	}
	if checkErr := semantic.Analyze(program); checkErr != nil {
		fmt.Fprint(os.Stderr, checkErr.Format(source, stderrIsTerminal()))
		return nil, "", checkErr
	}
	return program, source, nil
}
