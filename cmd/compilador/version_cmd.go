package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "json":
			data, err := getOutputJSON(map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
			if err != nil {
				fatal(err)
			}
			fmt.Println(string(data))
		case "", "text":
			fmt.Printf("compilador %s (commit %s, built %s)\n", version, commit, date)
		default:
			fatal(fmt.Sprintf("unknown output format: %s", format))
		}
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "Output format (json, text)")
	rootCmd.AddCommand(versionCmd)
}
