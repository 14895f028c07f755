package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Lefpe/compilador/errz"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

// friendlyMessage returns the caret-annotated form of a pipeline error when
// one is available.
func friendlyMessage(err error) string {
	var friendly errz.FriendlyError
	if errors.As(err, &friendly) {
		return friendly.FriendlyErrorMessage()
	}
	return err.Error()
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

func getOutputJSON(v interface{}) ([]byte, error) {
	if viper.GetBool("no-color") {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	zerolog.SetGlobalLevel(zerolog.Disabled)
	if levelStr := viper.GetString("log-level"); levelStr != "" {
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			fatal(fmt.Sprintf("unknown log level: %q", levelStr))
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
