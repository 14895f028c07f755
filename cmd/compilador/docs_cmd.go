package main

import (
	"fmt"

	"github.com/Lefpe/compilador"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:     "docs [topic]",
	Aliases: []string{"d"},
	Short:   "Browse language documentation",
	Long: `Print reference documentation for the language. With a topic argument,
print only that operator, statement form, or error kind.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		var opts []compilador.DocsOption
		if quick, _ := cmd.Flags().GetBool("quick"); quick {
			opts = append(opts, compilador.DocsQuick())
		}
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			opts = append(opts, compilador.DocsCategory(category))
		}
		if len(args) > 0 {
			opts = append(opts, compilador.DocsTopic(args[0]))
		}
		out, err := compilador.Docs(opts...)
		if err != nil {
			fatal(err)
		}
		fmt.Println(out)
	},
}

func init() {
	docsCmd.Flags().String("category", "", "Category to print (operators, statements, errors)")
	docsCmd.Flags().BoolP("quick", "q", false, "Print a concise quick reference")
	rootCmd.AddCommand(docsCmd)
}
