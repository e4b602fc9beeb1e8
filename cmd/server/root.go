package main

import (
	"log"

	"github.com/fadilmartias/mentor-eval/internal/config"
	"github.com/fadilmartias/mentor-eval/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "mentor-eval"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "mentor-eval records stage evaluations of applicants and keeps their summaries current",
		SilenceUsage: true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "an optional config file (env vars and .env are always read)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("reading config %s: %v", cfgFile, err)
	}
}

func newLogger() *zap.Logger {
	appConfig := config.LoadAppConfig()
	env := appConfig.Env
	if viper.GetBool("debug") {
		env = "development"
	}

	l, err := logger.New(env, viper.GetBool("json") || appConfig.LogJSON)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}
