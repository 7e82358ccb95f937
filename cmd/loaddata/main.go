// Command loaddata imports reference data: ingredients from a CSV file and
// tags from a YAML fixture.
//
// The ingredients CSV is headerless, two columns per row: name and
// measurement unit. Rows colliding with an existing (name, unit) pair are
// skipped.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tastebook/internal/config"
	"tastebook/internal/database"
	"tastebook/internal/models"
	"tastebook/internal/repository"
	"tastebook/internal/validation"

	"gopkg.in/yaml.v3"
)

type tagFixture struct {
	Tags []struct {
		Name  string `yaml:"name"`
		Slug  string `yaml:"slug"`
		Color string `yaml:"color"`
	} `yaml:"tags"`
}

func main() {
	ingredientsPath := flag.String("ingredients", "", "Path to ingredients CSV (name,measurement_unit)")
	tagsPath := flag.String("tags", "", "Path to tags YAML fixture")
	flag.Parse()

	if *ingredientsPath == "" && *tagsPath == "" {
		log.Fatal("Nothing to do: pass -ingredients and/or -tags")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	if *ingredientsPath != "" {
		inserted, total, err := loadIngredients(ctx, repository.NewIngredientRepository(db), *ingredientsPath)
		if err != nil {
			log.Fatalf("Ingredient import failed: %v", err)
		}
		log.Printf("Ingredients: %d rows read, %d inserted, %d skipped", total, inserted, total-inserted)
	}

	if *tagsPath != "" {
		created, err := loadTags(ctx, repository.NewTagRepository(db), *tagsPath)
		if err != nil {
			log.Fatalf("Tag import failed: %v", err)
		}
		log.Printf("Tags: %d created", created)
	}
}

func loadIngredients(ctx context.Context, repo repository.IngredientRepository, path string) (int64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	var rows []models.Ingredient
	var total int64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("row %d: %w", total+1, err)
		}
		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			return 0, 0, fmt.Errorf("row %d: empty name or unit", total+1)
		}
		rows = append(rows, models.Ingredient{Name: name, MeasurementUnit: unit})
		total++
	}

	inserted, err := repo.BulkUpsert(ctx, rows)
	if err != nil {
		return 0, 0, err
	}
	return inserted, total, nil
}

func loadTags(ctx context.Context, repo repository.TagRepository, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var fixture tagFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return 0, fmt.Errorf("parse fixture: %w", err)
	}

	created := 0
	for i, t := range fixture.Tags {
		if t.Name == "" {
			return created, fmt.Errorf("tag %d: name is required", i)
		}
		if err := validation.ValidateTagSlug(t.Slug); err != nil {
			return created, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		if err := validation.ValidateTagColor(t.Color); err != nil {
			return created, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		tag := models.Tag{Name: t.Name, Slug: t.Slug, Color: t.Color}
		if err := repo.Create(ctx, &tag); err != nil {
			return created, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		created++
	}
	return created, nil
}
