package main

import (
	"errors"
	"io"
	"os"

	"github.com/Lefpe/compilador"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// compileOptions returns the library options for a CLI invocation. Logging
// is gated by the global log level, which is disabled unless --log-level
// is given.
func compileOptions(args []string) []compilador.Option {
	opts := []compilador.Option{
		compilador.WithLogger(log.Logger),
	}
	if len(args) > 0 {
		opts = append(opts, compilador.WithFilename(args[0]))
	}
	return opts
}

func shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if noRepl, _ := cmd.Flags().GetBool("no-repl"); noRepl {
		return false
	}
	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		return false
	}
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getSourceCode determines what code the command operates on. There are
// three possibilities:
// 1. --code <code>
// 2. --stdin (read code from stdin)
// 3. path as args[0]
// The second return value is the file path, when the input came from one.
func getSourceCode(cmd *cobra.Command, args []string) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeFlagSet, stdinFlagSet, pathSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}
	if count == 0 {
		return "", "", errors.New("no input provided")
	}

	if stdinFlagSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
	if pathSupplied {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	code, err := cmd.Flags().GetString("code")
	if err != nil {
		return "", "", err
	}
	return code, "", nil
}
