package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philip98/obsidian-server/internal/app/repositories"
	"github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/config"
	"github.com/philip98/obsidian-server/internal/db"
	"github.com/philip98/obsidian-server/internal/pkg/logger"
)

var (
	configPath   string
	separator    string
	nameColumn   int
	yearColumn   int
	letterColumn int
	skipHeader   bool
)

var rootCmd = &cobra.Command{
	Use:   "importer <roster.csv>",
	Short: "Import a student roster from a CSV export",
	Long: `Imports students from a CSV export of the school administration
system into the loan ledger database. Rows that cannot be parsed are
skipped and reported; the rest are created as students.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the configuration file")
	rootCmd.Flags().StringVarP(&separator, "separator", "s", ",", "CSV field separator")
	rootCmd.Flags().IntVar(&nameColumn, "name-col", 0, "zero-based column holding the student name")
	rootCmd.Flags().IntVar(&yearColumn, "year-col", 1, "zero-based column holding the graduation year")
	rootCmd.Flags().IntVar(&letterColumn, "letter-col", 2, "zero-based column holding the form letter")
	rootCmd.Flags().BoolVar(&skipHeader, "skip-header", false, "skip the first line of the file")
}

func runImport(cmd *cobra.Command, args []string) error {
	if separator == "" {
		return fmt.Errorf("separator must not be empty")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open roster file: %w", err)
	}
	defer file.Close()

	repos := repositories.NewRepositories(database.Pool)
	importer := services.NewImportService(repos.StudentRepository)

	report, err := importer.ImportRoster(context.Background(), file, services.ImportOptions{
		Comma:        rune(separator[0]),
		NameColumn:   nameColumn,
		YearColumn:   yearColumn,
		LetterColumn: letterColumn,
		SkipHeader:   skipHeader,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d students, skipped %d rows\n", report.Imported, report.Skipped)
	for _, rowErr := range report.Errors {
		fmt.Printf("  line %d: %s\n", rowErr.Line, rowErr.Message)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Import failed")
		os.Exit(1)
	}
}
