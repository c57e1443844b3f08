package main

import (
	"fmt"
	"os"

	"github.com/deadcoast/sik-sort/internal/cleaner"
	"github.com/deadcoast/sik-sort/internal/config"
	"github.com/deadcoast/sik-sort/internal/console"
	"github.com/deadcoast/sik-sort/internal/oplog"
	"github.com/deadcoast/sik-sort/internal/safety"
	"github.com/deadcoast/sik-sort/internal/sorter"
	"github.com/spf13/cobra"
)

var (
	cfgFile         string
	bySize          bool
	byDate          bool
	useCreation     bool
	dateFormat      string
	dateEXIF        bool
	archiveMode     bool
	archiveTyped    bool
	findDupes       bool
	hashAlgorithm   string
	includePatterns []string
	excludePatterns []string
	includeExts     []string
	excludeExts     []string
	smallMax        int64
	mediumMax       int64
	dryRun          bool
	autoCleanup     bool
	skipSafety      bool
	logDir          string
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Sort the files under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSort,
}

func init() {
	runCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	runCmd.Flags().BoolVar(&bySize, "by-size", false, "sort into small/medium/large before type")
	runCmd.Flags().BoolVar(&byDate, "by-date", false, "sort into date buckets before type")
	runCmd.Flags().BoolVar(&useCreation, "creation-time", false, "bucket by creation time instead of modification time")
	runCmd.Flags().StringVar(&dateFormat, "date-format", "", "Go time layout for date buckets (default 2006-01)")
	runCmd.Flags().BoolVar(&dateEXIF, "exif", false, "prefer EXIF capture time for images in date modes")
	runCmd.Flags().BoolVar(&archiveMode, "archive", false, "archive mode: date buckets at the top level")
	runCmd.Flags().BoolVar(&archiveTyped, "with-type", false, "add type folders inside archive date buckets")
	runCmd.Flags().BoolVar(&findDupes, "dupes", false, "route byte-identical copies to a duplicates folder")
	runCmd.Flags().StringVar(&hashAlgorithm, "hash", "", "hash algorithm for duplicate detection: md5, sha256")
	runCmd.Flags().StringSliceVar(&includePatterns, "include", nil, "glob patterns to include (filename only)")
	runCmd.Flags().StringSliceVar(&excludePatterns, "exclude", nil, "glob patterns to exclude (filename only)")
	runCmd.Flags().StringSliceVar(&includeExts, "include-ext", nil, "extensions to include")
	runCmd.Flags().StringSliceVar(&excludeExts, "exclude-ext", nil, "extensions to exclude")
	runCmd.Flags().Int64Var(&smallMax, "small-max", 0, "inclusive upper bound in bytes for small files")
	runCmd.Flags().Int64Var(&mediumMax, "medium-max", 0, "inclusive upper bound in bytes for medium files")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate without touching the filesystem")
	runCmd.Flags().BoolVar(&autoCleanup, "cleanup", false, "remove directories left empty after sorting")
	runCmd.Flags().BoolVar(&skipSafety, "force", false, "skip the dev-directory pre-flight warnings")
	runCmd.Flags().StringVar(&logDir, "log-dir", "", "operation log directory")
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if bySize {
		cfg.SizeSorting = true
	}
	if byDate {
		cfg.DateSorting = true
	}
	if useCreation {
		cfg.DateMode = config.DateModeCreation
	}
	if dateFormat != "" {
		cfg.DateFormat = dateFormat
	}
	if dateEXIF {
		cfg.DateEXIF = true
	}
	if archiveMode {
		cfg.ArchiveMode = true
	}
	if archiveTyped {
		cfg.ArchiveTyped = true
	}
	if findDupes {
		cfg.DupeDetection = true
	}
	if hashAlgorithm != "" {
		cfg.HashAlgorithm = hashAlgorithm
	}
	if len(includePatterns) > 0 {
		cfg.Filters.IncludePatterns = includePatterns
	}
	if len(excludePatterns) > 0 {
		cfg.Filters.ExcludePatterns = excludePatterns
	}
	if len(includeExts) > 0 {
		cfg.Filters.IncludeExtensions = includeExts
	}
	if len(excludeExts) > 0 {
		cfg.Filters.ExcludeExtensions = excludeExts
	}
	if smallMax > 0 {
		cfg.Thresholds.SmallMax = smallMax
	}
	if mediumMax > 0 {
		cfg.Thresholds.MediumMax = mediumMax
	}
	if dryRun {
		cfg.DryRun = true
	}
	if autoCleanup {
		cfg.AutoCleanup = true
	}
	if logDir != "" {
		cfg.LogDir = logDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveRoot(cfg *config.Config, args []string) (string, error) {
	root := cfg.DefaultPath
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		return "", fmt.Errorf("no path given and no default_path configured")
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}
	return root, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, err := resolveRoot(cfg, args)
	if err != nil {
		return err
	}

	if !skipSafety {
		for _, warning := range safety.Check(root) {
			fmt.Fprintln(os.Stderr, "warning:", warning)
		}
	}

	sink := console.NewSink(os.Stdout)
	opts := []sorter.Option{sorter.WithEventSink(sink)}

	// Dry runs write no log: the log records moves that happened.
	var session *oplog.Session
	if !cfg.DryRun {
		session, err = oplog.NewSession(cfg.LogDir)
		if err != nil {
			return err
		}
		opts = append(opts, sorter.WithOperationLog(session))
	}

	s, err := sorter.New(cfg, opts...)
	if err != nil {
		if session != nil {
			session.Discard()
		}
		return err
	}

	stats, err := s.Run(root)
	if err != nil {
		if session != nil {
			session.Discard()
		}
		return err
	}

	if session != nil {
		if err := session.Finalize(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to write operation log:", err)
		}
	}

	sink.PrintSummary(stats)

	if cfg.AutoCleanup && !cfg.DryRun {
		removed, err := cleaner.Sweep(root, preservedDirs(cfg))
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d empty folder(s)\n", removed)
	}

	return nil
}
