package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/db"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk identity-map cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := db.OpenDiskCache("ember")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clean cache: %w", err)
		}
		if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
			fmt.Println("cache cleaned")
		}
		return nil
	},
}
