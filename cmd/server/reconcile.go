package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute the evaluation summary of every user",
	Long: "Recompute the evaluation summary of every user with evaluations or a stored summary.\n" +
		"Use it to repair summaries left stale by a failed recomputation.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := newLogger()
		defer log.Sync()

		db, err := ConnectDB(log)
		if err != nil {
			return err
		}
		svc, err := newServices(cmd.Context(), db, log)
		if err != nil {
			return err
		}
		defer svc.publisher.Close()

		done, err := svc.summaries.Reconcile(cmd.Context(), viper.GetInt("concurrency"))
		log.Info("reconcile finished", zap.Int("recomputed", done), zap.Bool("failures", err != nil))
		return err
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().IntP("concurrency", "c", 4, "number of users recomputed at once")
	viper.BindPFlag("concurrency", reconcileCmd.Flags().Lookup("concurrency"))
}
