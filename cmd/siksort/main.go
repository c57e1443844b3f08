package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "siksort",
	Short: "Sort a directory tree into category folders",
	Long: `sik-sort scans a directory tree, classifies each file by extension
(and optionally by size, date, or content hash), and relocates files into
category subfolders with conflict-safe renaming.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appVersion)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}
