package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/fadilmartias/mentor-eval/internal/config"
	"github.com/fadilmartias/mentor-eval/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print evaluation summary changes published on redis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := newLogger()
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		publisher, err := service.NewRedisSummaryPublisher(ctx, config.LoadRedisConfig(), log)
		if err != nil {
			return err
		}
		if publisher == nil {
			return errors.New("REDIS_ADDR is not set")
		}
		defer publisher.Close()

		return publisher.Watch(ctx, func(msg service.SummaryMessage) {
			fields := []zap.Field{zap.String("user_id", msg.UserID.String()), zap.String("action", msg.Action)}
			if msg.Summary != nil {
				fields = append(fields,
					zap.Int("total_evaluations", msg.Summary.TotalEvaluations),
					zap.Float64("overall_average", msg.Summary.OverallAverage),
				)
			}
			log.Info("summary changed", fields...)
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
