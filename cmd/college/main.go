package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/pkg/logger"
)

// @title College Roster API
// @version 1.0
// @description JSON API for the students and courses of a college

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

var configPath string

var rootCmd = &cobra.Command{
	Use:          "college",
	Short:        "Manage the students and courses of a college",
	Long:         `College serves the student and course roster as web pages and a JSON API, backed by PostgreSQL.`,
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
