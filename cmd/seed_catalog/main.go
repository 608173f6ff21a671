package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/db"
	"github.com/learnpath/site/logger"
)

var (
	dbPath   string
	fromFile string
)

var rootCmd = &cobra.Command{
	Use:   "seed_catalog",
	Short: "Create or refresh the sqlite course catalog",
	Long: `seed_catalog writes the course catalog into a sqlite database that the
site can serve with CATALOG_DB. Courses come from a JSON file, or from the
catalog built into the site when --from is not given.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCourses(fromFile)
		if err != nil {
			return err
		}
		return seed(cmd.Context(), dbPath, courses)
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "catalog.db", "sqlite database to write")
	rootCmd.Flags().StringVar(&fromFile, "from", "", "JSON file with an array of courses")
}

// loadCourses reads courses from a JSON file, or returns the built-in catalog
// when path is empty.
func loadCourses(path string) ([]catalog.Course, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var courses []catalog.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	seen := map[string]bool{}
	for i, c := range courses {
		if c.ID == "" {
			return nil, fmt.Errorf("course %d has no ID", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate course ID %q", c.ID)
		}
		seen[c.ID] = true
	}
	return courses, nil
}

func seed(ctx context.Context, path string, courses []catalog.Course) error {
	conn, err := db.Open(path)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, catalog.Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := catalog.Seed(ctx, conn, courses); err != nil {
		return err
	}
	log.Info().Str("db", path).Int("courses", len(courses)).Msg("catalog seeded")
	return nil
}

func main() {
	logger.Init("info", "console")
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}
