package main

import (
	"os"

	"github.com/cyltest/api/app"
	"github.com/cyltest/api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configName string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "cyltest-api",
	Short: "Cylinder test certificate API server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		restApp, err := app.NewRestApp(configName, configPath)
		if err != nil {
			return err
		}
		restApp.Run()
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&configName, "config-name", "", "config file name without extension")
	serveCmd.Flags().StringVar(&configPath, "config-path", "", "directory holding the config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	log := logger.InitLogger()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
