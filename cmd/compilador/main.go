package main

import (
	"fmt"
	"os"

	"github.com/Lefpe/compilador"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "compilador",
	Short: "Compiler front end for a small C-like statement language",
	Long: `Compilador tokenizes and parses a small C-like statement language and
regenerates normalized source text. Run it with no arguments to start an
interactive session, or give it code via a file path, -c, or --stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		if shouldRunRepl(cmd, args) {
			if err := runRepl(cmd.Context()); err != nil {
				fatal(err)
			}
			return
		}
		source, _, err := getSourceCode(cmd, args)
		if err != nil {
			fatal(err)
		}
		output, err := compilador.Compile(source, compileOptions(args)...)
		if err != nil {
			fatal(friendlyMessage(err))
		}
		fmt.Println(output)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindEnv("no-color", "NO_COLOR")

	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindEnv("log-level", "COMPILADOR_LOG_LEVEL")

	rootCmd.Flags().StringP("code", "c", "", "Code to compile")
	rootCmd.Flags().Bool("stdin", false, "Read code from stdin")
	rootCmd.Flags().Bool("no-repl", false, "Disable the interactive session")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
