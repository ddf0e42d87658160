package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yigit/college/internal/bootstrap"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/export"
	"github.com/yigit/college/internal/pkg/logger"
	"github.com/yigit/college/internal/seed"
	"github.com/yigit/college/internal/server"
)

var exportOut string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the courses and students tables",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample courses when the catalog is empty",
	RunE:  runSeed,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the student roster to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: students_<date>.xlsx)")
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, deps, err := bootstrap.Connect(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	defer deps.DB.Close()

	// Connect already attempted initialization; retry once to surface the error
	if !deps.Schema.Ready() {
		if err := deps.Schema.Initialize(cmd.Context()); err != nil {
			return err
		}
	}

	logger.Info().Msg("Schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, deps, err := bootstrap.Connect(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	defer deps.DB.Close()

	if !deps.Schema.Ready() {
		return apperrors.ErrInitializationFailed
	}

	created, err := seed.CreateDefaultData(cmd.Context(), deps.CollegeService, deps.Logger)
	if err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	logger.Info().Int("created", created).Msg("Seeding complete")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	_, deps, err := bootstrap.Connect(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	defer deps.DB.Close()

	students, err := deps.CollegeService.GetAllStudents(cmd.Context())
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("failed to load students: %w", err)
	}

	path := exportPath(exportOut, time.Now())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
		}
	}()

	if err := export.WriteStudents(f, students); err != nil {
		return err
	}

	logger.Info().Str("file", path).Int("students", len(students)).Msg("Roster exported")
	return nil
}

// exportPath returns out, or a dated default name when out is empty.
// A missing .xlsx extension is added.
func exportPath(out string, now time.Time) string {
	if out == "" {
		return fmt.Sprintf("students_%s.xlsx", now.Format("2006-01-02"))
	}
	if filepath.Ext(out) != ".xlsx" {
		return out + ".xlsx"
	}
	return out
}
