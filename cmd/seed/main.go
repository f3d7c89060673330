// Package main implements the itinerary seeding CLI. It reads a
// tab-separated file of itinerary rows (date, location, food, activities,
// accommodation, travel — no header) and batch-writes them to the
// itinerary table. One-off data loading only; the API server never runs
// this code.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pkordes/travel-planner/backend/internal/config"
	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

func main() {
	file := flag.String("file", "", "path to the tab-separated itinerary file (required)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *file == "" {
		slog.Error("missing -file flag")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		slog.Error("failed to open input file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	items, skipped, err := parseItems(f)
	if err != nil {
		slog.Error("failed to parse input file", "error", err)
		os.Exit(1)
	}
	for _, row := range skipped {
		slog.Warn("skipping row with invalid date", "date", row)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		slog.Error("failed to load AWS configuration", "error", err)
		os.Exit(1)
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	itineraryRepo := repo.NewItineraryRepo(client, cfg.ItineraryTable)
	if err := itineraryRepo.PutBatch(context.Background(), items); err != nil {
		slog.Error("failed to write itinerary items", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding complete", "written", len(items), "skipped", len(skipped))
}

// parseItems reads tab-separated itinerary rows and returns the valid
// items plus the raw date values of rows that were skipped. Columns:
// date, location, food, activities, accommodation, travel. Rows shorter
// than six columns are padded with empty fields.
func parseItems(r io.Reader) (items []domain.ItineraryItem, skipped []string, err error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read tsv: %w", err)
	}

	for _, record := range records {
		for len(record) < 6 {
			record = append(record, "")
		}

		date := normalizeDate(strings.TrimSpace(record[0]))
		if !domain.IsValidDate(date) {
			skipped = append(skipped, record[0])
			continue
		}

		items = append(items, domain.ItineraryItem{
			Date:          date,
			Location:      strings.TrimSpace(record[1]),
			Food:          strings.TrimSpace(record[2]),
			Activities:    strings.TrimSpace(record[3]),
			Accommodation: strings.TrimSpace(record[4]),
			Travel:        strings.TrimSpace(record[5]),
		})
	}
	return items, skipped, nil
}

// normalizeDate converts the date formats seen in exported spreadsheets
// to DD/MM/YY: DD/MM/YYYY, DD-MM-YY, and ISO YYYY-MM-DD. Values already
// in DD/MM/YY pass through unchanged; anything else is returned as-is
// for the caller's validity check to reject.
func normalizeDate(s string) string {
	if parts := strings.Split(s, "/"); len(parts) == 3 {
		if len(parts[2]) == 4 {
			return parts[0] + "/" + parts[1] + "/" + parts[2][2:]
		}
		return s
	}
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		if len(parts[0]) == 4 {
			// ISO YYYY-MM-DD.
			return parts[2] + "/" + parts[1] + "/" + parts[0][2:]
		}
		return parts[0] + "/" + parts[1] + "/" + parts[2]
	}
	return s
}
