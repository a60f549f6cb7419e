package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mahjong/internal/applog"
	"mahjong/internal/config"
	"mahjong/internal/metrics"
	"mahjong/internal/server"
	"mahjong/internal/store"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "mahjongd",
	Short: "mahjongd scoring service",
	Long:  `mahjongd serves hand-shape and scoring requests over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "mahjongd: %v\n", err)
			os.Exit(1)
		}
		applog.Init(config.Conf.AppName, logLevel)
		applog.Info("config loaded: %+v", config.Conf)

		var st *store.Store
		if config.Conf.Database.Mongo.Url != "" {
			s, err := store.Open(
				config.Conf.Database.Mongo.Url, config.Conf.Database.Mongo.Db, config.Conf.Database.Mongo.Collection,
				uint64(config.Conf.Database.Mongo.MinPoolSize), uint64(config.Conf.Database.Mongo.MaxPoolSize),
			)
			if err != nil {
				applog.Warn("store unavailable, continuing without persistence: %v", err)
			} else {
				st = s
				defer st.Close()
			}
		}

		if config.Conf.MetricPort > 0 {
			go func() {
				addr := fmt.Sprintf("0.0.0.0:%d", config.Conf.MetricPort)
				applog.Info("starting metrics dashboard, URL: http://localhost:%d/debug/statsviz/", config.Conf.MetricPort)
				if err := metrics.Serve(addr); err != nil {
					applog.Error("metrics server stopped: %v", err)
				}
			}()
		}

		srv := server.New(st)
		addr := fmt.Sprintf(":%d", config.Conf.HttpPort)
		applog.Info("serving on %s", addr)
		if err := srv.Run(addr); err != nil {
			applog.Fatal("server stopped: %v", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "resource/application.yml", "config file")
	rootCmd.Flags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mahjongd: %v\n", err)
		os.Exit(1)
	}
}
