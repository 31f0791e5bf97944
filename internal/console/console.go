// Package console is the interactive line editor behind the debugger prompt.
package console

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
)

// Console reads lines from the terminal with editing and history
type Console struct {
	ln      *liner.State
	history string
}

// New opens the terminal. History is read from historyPath when it is
// not empty and written back by Close.
func New(historyPath string) *Console {
	c := &Console{ln: liner.NewLiner(), history: historyPath}
	c.ln.SetCtrlCAborts(true)

	if c.history != "" {
		if f, err := os.Open(c.history); err == nil {
			_, _ = c.ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	return c
}

// ReadLine shows prompt and returns the entered line. Ctrl-C and Ctrl-D
// are reported as io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	line, err := c.ln.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		c.ln.AppendHistory(line)
	}

	return line, nil
}

// Close restores the terminal and saves the history
func (c *Console) Close() error {
	if c.history != "" {
		if f, err := os.Create(c.history); err == nil {
			if _, err := c.ln.WriteHistory(f); err != nil {
				log.Warn("cannot write history", "file", c.history, "error", err)
			}
			_ = f.Close()
		}
	}

	return c.ln.Close()
}
