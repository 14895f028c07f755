package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/Lefpe/compilador"
	"github.com/mitchellh/go-homedir"
)

const (
	prompt      = ">>> "
	historyFile = ".compilador_history"
	maxHistory  = 500
)

type repl struct {
	ctx         context.Context
	buffer      []rune
	pending     string
	history     []string
	historyIdx  int
	historyPath string
}

func runRepl(ctx context.Context) error {
	fmt.Printf("compilador %s\n", version)
	fmt.Println(`Enter a statement to see its normalized form. Type "exit" or press ctrl+c to quit.`)

	r := &repl{ctx: ctx, historyIdx: -1}
	r.history, r.historyPath = loadHistory()
	r.draw()

	err := keyboard.Listen(r.handleKey)
	fmt.Println()
	return err
}

func (r *repl) handleKey(key keys.Key) (bool, error) {
	if r.ctx.Err() != nil {
		return true, nil
	}
	switch key.Code {
	case keys.CtrlC, keys.CtrlD:
		return true, nil
	case keys.Enter:
		fmt.Println()
		line := strings.TrimSpace(string(r.buffer))
		r.buffer = r.buffer[:0]
		r.historyIdx = -1
		if line == "" {
			r.draw()
			return false, nil
		}
		if line == "exit" || line == "quit" {
			return true, nil
		}
		r.history = append(r.history, line)
		appendHistory(r.historyPath, line)
		r.eval(line)
		r.draw()
	case keys.Up:
		r.historyUp()
		r.draw()
	case keys.Down:
		r.historyDown()
		r.draw()
	case keys.Backspace:
		if len(r.buffer) > 0 {
			r.buffer = r.buffer[:len(r.buffer)-1]
		}
		r.draw()
	case keys.Space:
		r.buffer = append(r.buffer, ' ')
		r.draw()
	case keys.Tab:
		r.buffer = append(r.buffer, ' ', ' ')
		r.draw()
	case keys.RuneKey:
		r.buffer = append(r.buffer, key.Runes...)
		r.draw()
	}
	return false, nil
}

func (r *repl) draw() {
	fmt.Printf("\r\x1b[K%s%s", prompt, string(r.buffer))
}

func (r *repl) eval(line string) {
	output, err := compilador.Compile(line, compileOptions(nil)...)
	if err != nil {
		fmt.Println(red(strings.TrimRight(friendlyMessage(err), "\n")))
		return
	}
	fmt.Println(output)
}

func (r *repl) historyUp() {
	if len(r.history) == 0 {
		return
	}
	if r.historyIdx == -1 {
		r.pending = string(r.buffer)
		r.historyIdx = len(r.history) - 1
	} else if r.historyIdx > 0 {
		r.historyIdx--
	}
	r.buffer = []rune(r.history[r.historyIdx])
}

func (r *repl) historyDown() {
	if r.historyIdx == -1 {
		return
	}
	if r.historyIdx < len(r.history)-1 {
		r.historyIdx++
		r.buffer = []rune(r.history[r.historyIdx])
	} else {
		r.historyIdx = -1
		r.buffer = []rune(r.pending)
	}
}

func loadHistory() ([]string, string) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, ""
	}
	path := filepath.Join(home, historyFile)
	return readHistory(path), path
}

func readHistory(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	history := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			history = append(history, line)
		}
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	return history
}

func appendHistory(path, line string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, line)
}
