package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/TheMichaelB/textseal/internal/config"
	"github.com/TheMichaelB/textseal/internal/models"
)

// errReported marks a failure that was already printed as a result line.
var errReported = errors.New("reported")

// printer writes result lines: "Encrypted: ...", "Decrypted: ...",
// "Error: ...", or one JSON object per result.
type printer struct {
	w       io.Writer
	json    bool
	scheme  string
	success *color.Color
	failure *color.Color
}

func newPrinter(w io.Writer, cfg config.OutputConfig, scheme string) *printer {
	p := &printer{
		w:       w,
		json:    cfg.Format == "json",
		scheme:  scheme,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}

	if cfg.Color && isTerminal(w) {
		p.success.EnableColor()
		p.failure.EnableColor()
	} else {
		p.success.DisableColor()
		p.failure.DisableColor()
	}

	return p
}

func (p *printer) printSuccess(op, label, value string) error {
	if p.json {
		return p.printJSON(models.NewResult(op, p.scheme, value))
	}
	_, err := fmt.Fprintf(p.w, "%s %s\n", p.success.Sprint(label+":"), value)
	return err
}

// printWritten reports a result that went to a file instead of stdout.
func (p *printer) printWritten(op, label, path string) error {
	if p.json {
		return p.printJSON(models.NewFileResult(op, p.scheme, path))
	}
	_, err := fmt.Fprintf(p.w, "%s written to %s\n", p.success.Sprint(label+":"), path)
	return err
}

func (p *printer) printError(op string, failure error) error {
	if p.json {
		return p.printJSON(models.NewErrorResult(op, p.scheme, failure))
	}
	_, err := fmt.Fprintf(p.w, "%s %v\n", p.failure.Sprint("Error:"), failure)
	return err
}

func (p *printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
