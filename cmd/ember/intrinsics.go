package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/target"
)

var intrinsicsCmd = &cobra.Command{
	Use:   "intrinsics [flags] file.em",
	Short: "Collect runtime intrinsic requirements per function",
	Long: `Intrinsics analyzes every function body in the file and prints which
runtime helper functions it depends on and whether it allocates.`,
	Args: cobra.ExactArgs(1),
	RunE: runIntrinsics,
}

func init() {
	intrinsicsCmd.Flags().String("target", "host", "target triple (host|x86_64-linux-gnu|aarch64-linux-gnu)")
}

func runIntrinsics(cmd *cobra.Command, args []string) error {
	t, err := pickTarget(cmd)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	reqs, bag := driver.CollectFileIntrinsics(fileSet.Get(fileID), t, maxDiagnostics(cmd))
	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if bag.HasErrors() {
		return fmt.Errorf("analysis failed with %d diagnostics", bag.Len())
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	for _, req := range reqs {
		fmt.Printf("fn %s: alloc=%v\n", req.Name, req.NeedsAlloc)
		if quiet {
			continue
		}
		for _, e := range req.Entries {
			fmt.Printf("  %s\n", e.Prototype)
		}
	}
	return nil
}

func pickTarget(cmd *cobra.Command) (target.Target, error) {
	name, _ := cmd.Flags().GetString("target")
	switch name {
	case "host", "":
		return target.Host(), nil
	case "x86_64-linux-gnu":
		return target.X86_64LinuxGNU(), nil
	case "aarch64-linux-gnu":
		return target.AArch64LinuxGNU(), nil
	default:
		return target.Target{}, fmt.Errorf("unknown target: %s", name)
	}
}
