package main

import (
	"fmt"

	"github.com/deadcoast/sik-sort/internal/dupes"
	"github.com/deadcoast/sik-sort/internal/scanner"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes [path]",
	Short: "Report byte-identical files without moving anything",
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

		detector, err := dupes.New(cfg.HashAlgorithm)
		if err != nil {
			return err
		}

		files, err := scanner.New(nil).Scan(root)
		if err != nil {
			return err
		}

		groups := detector.Find(files)
		for _, g := range groups {
			fmt.Printf("%s\n", g.Hash)
			fmt.Printf("  keep: %s\n", g.Paths[0])
			for _, p := range g.Paths[1:] {
				fmt.Printf("  dupe: %s\n", p)
			}
		}

		stats := dupes.Stats(groups)
		fmt.Printf("\n%d group(s), %d duplicate(s), %s reclaimable\n",
			stats.Groups, stats.TotalDuplicates, humanize.IBytes(uint64(stats.SpaceSaved)))
		return nil
	},
}

func init() {
	dupesCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	dupesCmd.Flags().StringVar(&hashAlgorithm, "hash", "", "hash algorithm: md5, sha256")
}
