package main

import (
	"fmt"
	"time"

	"github.com/deadcoast/sik-sort/internal/config"
	"github.com/deadcoast/sik-sort/internal/oplog"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the most recent sort session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if cfgFile != "" {
			var err error
			cfg, err = config.LoadFromFile(cfgFile)
			if err != nil {
				return err
			}
		}
		if logDir != "" {
			cfg.LogDir = logDir
		}

		doc, err := oplog.Latest(cfg.LogDir)
		if err != nil {
			return err
		}

		fmt.Printf("Session %s -> %s, %d operation(s)\n",
			doc.StartTime.Format(time.RFC3339),
			doc.EndTime.Format(time.RFC3339),
			len(doc.Operations))

		for _, op := range doc.Operations {
			suffix := ""
			if op.ConflictResolved {
				suffix = "  (renamed)"
			}
			fmt.Printf("  [%s] %s -> %s%s\n", op.Category, op.Source, op.Destination, suffix)
		}
		return nil
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config <path>",
	Short: "Write a commented starter configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteTemplate(args[0]); err != nil {
			return err
		}
		fmt.Println("Wrote", args[0])
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	logsCmd.Flags().StringVar(&logDir, "log-dir", "", "operation log directory")
}
