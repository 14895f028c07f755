package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Lefpe/compilador"
	"github.com/Lefpe/compilador/syntax"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check files...",
	Short: "Check that source files compile",
	Long: `Compile every given file and report the files that fail. All failures are
reported, not just the first one. With --strict, sources must also use
the brace style the compiler emits.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		strict, _ := cmd.Flags().GetBool("strict")
		var result *multierror.Error
		for _, path := range args {
			if err := checkFile(cmd.Context(), path, strict); err != nil {
				result = multierror.Append(result, err)
				fmt.Fprintf(os.Stderr, "%s %s\n", red("FAIL"), path)
				fmt.Fprintln(os.Stderr, strings.TrimRight(friendlyMessage(err), "\n"))
			} else {
				fmt.Printf("%s %s\n", green("ok"), path)
			}
		}
		if result.ErrorOrNil() != nil {
			fatal(fmt.Sprintf("%d of %d files failed", result.Len(), len(args)))
		}
	},
}

func checkFile(ctx context.Context, path string, strict bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(data)
	if _, err := compilador.Compile(source, compilador.WithFilename(path)); err != nil {
		return err
	}
	if !strict {
		return nil
	}
	program, err := compilador.Parse(ctx, source, compilador.WithFilename(path))
	if err != nil {
		return err
	}
	if errs := syntax.NewValidator(syntax.Strict).Validate(program); len(errs) > 0 {
		return syntax.NewValidationErrors(errs)
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Require generator brace style")
	rootCmd.AddCommand(checkCmd)
}
