package main

import (
	"fmt"
	"os"

	"github.com/Lefpe/compilador"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:     "fmt [files...]",
	Aliases: []string{"f"},
	Short:   "Format source code",
	Long: `Compile each input and print the normalized text, or write it back to the
source file with -w. Code may also be given inline with -c or on stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		write, _ := cmd.Flags().GetBool("write")

		if len(args) > 1 {
			for _, path := range args {
				if err := formatFile(path, write); err != nil {
					fatal(friendlyMessage(err))
				}
			}
			return
		}

		source, path, err := getSourceCode(cmd, args)
		if err != nil {
			fatal(err)
		}
		output, err := compilador.Compile(source, compileOptions(args)...)
		if err != nil {
			fatal(friendlyMessage(err))
		}
		if write {
			if path == "" {
				fatal("cannot use -w without a file")
			}
			if err := os.WriteFile(path, []byte(output+"\n"), 0o644); err != nil {
				fatal(err)
			}
			return
		}
		fmt.Println(output)
	},
}

func formatFile(path string, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	output, err := compilador.Compile(string(data), compilador.WithFilename(path))
	if err != nil {
		return err
	}
	if write {
		return os.WriteFile(path, []byte(output+"\n"), 0o644)
	}
	fmt.Println(output)
	return nil
}

func init() {
	fmtCmd.Flags().StringP("code", "c", "", "Code to format")
	fmtCmd.Flags().Bool("stdin", false, "Read code from stdin")
	fmtCmd.Flags().BoolP("write", "w", false, "Write result back to source files")
	rootCmd.AddCommand(fmtCmd)
}
