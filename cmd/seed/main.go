package main

import (
	"context"
	"flag"
	"os"
	"sort"

	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	lpFile := flag.String("lp", "data/learning-path/LP and Course Mapping.xlsx", "learning path and course mapping workbook")
	resourceFile := flag.String("resources", "data/resources/Resource Data Learning Buddy.xlsx", "resource data workbook")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	color.Cyan("🌱 Seeding Learning Buddy dataset")
	color.Cyan("  📊 %s", *lpFile)
	color.Cyan("  📊 %s\n", *resourceFile)

	ds, err := LoadDataset(*lpFile, *resourceFile)
	if err != nil {
		color.Red("Failed to read dataset: %v", err)
		os.Exit(1)
	}
	for _, name := range ds.Missing {
		color.Yellow("  → no sheet for %s, table left untouched", name)
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	result, err := Seed(context.Background(), unitofwork.NewRepositoryFactory(db), ds)
	if err != nil {
		color.Red("Seed failed, nothing written: %v", err)
		os.Exit(1)
	}

	tables := make([]string, 0, len(result))
	for name := range result {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	for _, name := range tables {
		color.Green("  [OK] %s: %d rows", name, result[name])
	}

	color.Cyan("\n✅ Seed completed")
}
