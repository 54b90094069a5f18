package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/astid"
	"ember/internal/db"
	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/observ"
	"ember/internal/project"
	"ember/internal/source"
	"ember/internal/syntax"
)

var itemsCmd = &cobra.Command{
	Use:   "items [flags] [dir]",
	Short: "Assign stable item identities across a directory",
	Long: `Items parses every *.em file under the directory and prints each file's
item identity map: the numbered module items in breadth-first order.
Without an argument the directory is taken from the ember.toml source root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().Bool("cache", false, "reuse identity maps from the on-disk cache")
}

func runItems(cmd *cobra.Command, args []string) error {
	dir, err := resolveSourceDir(args)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("assign")

	withCache, _ := cmd.Flags().GetBool("cache")
	if withCache {
		if err := runItemsCached(cmd, dir); err != nil {
			return err
		}
	} else {
		fileSet, results, err := driver.AssignDir(cmd.Context(), dir, maxDiagnostics(cmd), jobsFlag(cmd))
		if err != nil {
			return fmt.Errorf("assignment failed: %w", err)
		}
		for _, res := range results {
			if res.Bag.Len() > 0 {
				res.Bag.Sort()
				diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stderr),
					ShowNotes: true,
				})
			}
			printItemMap(res.Path, res.Root, res.Items)
		}
	}

	timer.End(phase, dir)
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// runItemsCached идёт через Snapshot, чтобы тёплый запуск читал карты с диска.
func runItemsCached(cmd *cobra.Command, dir string) error {
	cache, err := db.OpenDiskCache("ember")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	fileSet := source.NewFileSetWithBase(dir)
	snap := db.NewSnapshot(fileSet, cache)

	fileIDs, err := snap.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, id := range fileIDs {
		printItemMap(fileSet.Get(id).Path, snap.Parse(id), snap.ItemMap(id))
	}
	return nil
}

func printItemMap(path string, root *syntax.Node, items *astid.Map) {
	fmt.Printf("%s: %d items\n", path, items.Len())
	for i := range items.Len() {
		ptr := items.Get(astid.ErasedItemID(i)) // #nosec G115 -- i < Len() <= MaxUint32
		name := ""
		if root != nil {
			if n := ptr.Resolve(root); n != nil {
				name = n.Name()
			}
		}
		if name != "" {
			fmt.Printf("  #%d %s %s\n", i, ptr, name)
		} else {
			fmt.Printf("  #%d %s\n", i, ptr)
		}
	}
}

// resolveSourceDir возвращает либо явный аргумент, либо source root из ember.toml.
func resolveSourceDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	manifest, err := project.FindManifest(wd)
	if err != nil {
		return "", fmt.Errorf("no directory given and %w", err)
	}
	return manifest.SourceRoot(), nil
}

func jobsFlag(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return 0
	}
	return n
}
