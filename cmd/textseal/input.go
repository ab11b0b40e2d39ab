package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/TheMichaelB/textseal/internal/models"
)

// stdinArg stands for "read this value interactively or from stdin".
const stdinArg = "-"

func (a *app) readPassword(arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}

	password, err := a.prompt("Password: ")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

// readText returns arg, or all of stdin when arg is "-". One trailing
// newline is dropped so that `echo text | textseal enc pw -` round-trips.
func (a *app) readText(arg string, checkText bool) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")

	if checkText {
		if err := models.CheckText([]byte(s)); err != nil {
			return "", err
		}
	}
	return s, nil
}

// promptPassword reads from the controlling terminal without echo.
func (a *app) promptPassword(prompt string) (string, error) {
	f, ok := a.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("%w: password prompt needs a terminal", models.ErrInvalidInput)
	}

	fmt.Fprint(a.stderr, prompt)
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return "", err
	}

	return string(password), nil
}
