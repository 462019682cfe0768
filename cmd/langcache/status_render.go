package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", "\x1b[34m"},
	statusOK:    {"OK", "\x1b[32m"},
	statusWarn:  {"WARN", "\x1b[33m"},
	statusError: {"ERROR", "\x1b[31m"},
}

const (
	ansiReset  = "\x1b[0m"
	labelWidth = 20
)

// statusPrinter writes aligned "label: [KIND] detail" lines, colored when
// the destination is a terminal.
type statusPrinter struct {
	out   io.Writer
	color bool
}

func newStatusPrinter(out io.Writer) *statusPrinter {
	return &statusPrinter{out: out, color: isTerminal(out)}
}

func (p *statusPrinter) section(title string) {
	heading := "== " + strings.TrimSpace(title) + " =="
	p.println(heading, statusInfo)
	p.println(strings.Repeat("-", len(heading)), statusInfo)
}

func (p *statusPrinter) line(label string, kind statusKind, detail string) {
	p.println(formatStatus(label, kind, detail), kind)
}

func (p *statusPrinter) blank() {
	fmt.Fprintln(p.out)
}

func (p *statusPrinter) println(s string, kind statusKind) {
	if p.color {
		s = statusStyles[kind].color + s + ansiReset
	}
	fmt.Fprintln(p.out, s)
}

func formatStatus(label string, kind statusKind, detail string) string {
	s := fmt.Sprintf("  %-*s [%s]", labelWidth, label+":", statusStyles[kind].label)
	if detail != "" {
		s += " " + detail
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
