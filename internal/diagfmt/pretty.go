// Package diagfmt renders diagnostics for humans.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	codeColor = color.New(color.Bold)
	markColor = color.New(color.FgGreen)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		printOne(w, fs, d, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printHeader(w, fs, n.Span, "NOTE", "", n.Msg, opts)
				printContext(w, fs, n.Span, opts)
			}
		}
	}
}

func printOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	printHeader(w, fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message, opts)
	printContext(w, fs, d.Primary, opts)
}

func printHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev, code, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(sp)
	path := displayPath(fs, sp.File, opts.PathMode)

	sevText := sev
	codeText := code
	if opts.Color {
		sevText = severityColor(sev).Sprint(sev)
		if code != "" {
			codeText = codeColor.Sprint(code)
		}
	}
	if code != "" {
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, codeText, msg)
	} else {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, sevText, msg)
	}
}

// printContext печатает строку исходника и подчёркивание ^~~~ под спаном.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	file := fs.Get(sp.File)
	line := file.GetLine(start.Line)
	if line == "" && start.Line != 1 {
		return
	}

	fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", " "))

	// Ширину префикса считаем по экранным колонкам, не по байтам.
	prefixCols := displayCols(line, int(start.Col)-1)
	spanLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanLen = displayCols(line[min(len(line), int(start.Col)-1):], int(end.Col-start.Col))
	}
	marker := "^" + strings.Repeat("~", max(0, spanLen-1))
	if opts.Color {
		marker = markColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefixCols), marker)
}

// displayCols возвращает экранную ширину первых n байт строки.
func displayCols(line string, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(line) {
		n = len(line)
	}
	return runewidth.StringWidth(line[:n])
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "ERROR":
		return errColor
	case "WARNING":
		return warnColor
	default:
		return infoColor
	}
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	p := fs.Get(id).Path
	switch mode {
	case PathModeBasename:
		return filepath.Base(p)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	case PathModeRelative, PathModeAuto:
		if rel, err := filepath.Rel(fs.BaseDir(), p); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
		return p
	}
	return p
}
