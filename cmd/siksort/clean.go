package main

import (
	"fmt"

	"github.com/deadcoast/sik-sort/internal/cleaner"
	"github.com/deadcoast/sik-sort/internal/config"
	"github.com/deadcoast/sik-sort/internal/sorter"
	"github.com/deadcoast/sik-sort/pkg/types"
	"github.com/spf13/cobra"
)

// preservedDirs lists folder names the cleaner must leave alone even when
// empty: every destination folder any mode could have created.
func preservedDirs(cfg *config.Config) []string {
	dirs := []string{
		string(types.CategoryImage), string(types.CategoryVideo),
		string(types.CategoryArchive), string(types.CategoryMisc),
		string(types.SizeSmall), string(types.SizeMedium), string(types.SizeLarge),
		sorter.DuplicatesDir,
	}
	return dirs
}

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove empty directories left behind by sorting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root, err := resolveRoot(cfg, args)
		if err != nil {
			return err
		}

		removed, err := cleaner.Sweep(root, preservedDirs(cfg))
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d empty folder(s)\n", removed)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
}
