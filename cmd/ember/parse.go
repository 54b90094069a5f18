package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/diagfmt"
	"ember/internal/observ"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.em",
	Short: "Parse an ember source file",
	Long:  `Parse builds the syntax tree of an ember source file and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	phase := timer.Begin("parse")
	root := parser.ParseFile(fileSet.Get(fileID), parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	timer.End(phase, args[0])

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	dumpTree(os.Stdout, root, 0)

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if bag.HasErrors() {
		return fmt.Errorf("parsing failed with %d diagnostics", bag.Len())
	}
	return nil
}

func dumpTree(w *os.File, n *syntax.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Text != "" {
		fmt.Fprintf(w, "%s%s %s %q\n", indent, n.Kind, n.Span, n.Text)
	} else {
		fmt.Fprintf(w, "%s%s %s\n", indent, n.Kind, n.Span)
	}
	for _, c := range n.Children() {
		dumpTree(w, c, depth+1)
	}
}
