package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage criteria templates",
}

var templatesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create criteria templates from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		db, err := ConnectDB(log)
		if err != nil {
			return err
		}
		svc, err := newServices(cmd.Context(), db, log)
		if err != nil {
			return err
		}
		defer svc.publisher.Close()

		created, err := svc.templates.ImportTemplates(cmd.Context(), data)
		for _, t := range created {
			log.Info("template imported",
				zap.String("template", t.Name),
				zap.Int("version", t.Version),
				zap.String("id", t.ID.String()),
			)
		}
		return err
	},
}

func init() {
	templatesCmd.AddCommand(templatesImportCmd)
	rootCmd.AddCommand(templatesCmd)
}
