package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kisan/config"
	"kisan/database"
	"kisan/logger"
	"kisan/models"

	"github.com/xuri/excelize/v2"
)

// defaultFeatures are the homepage cards shown by the frontend.
var defaultFeatures = []models.Feature{
	{Title: "Farmer Management", Description: "Register farmers and keep their village, contact and land holding details up to date.", IconName: "Users", IconColor: "green"},
	{Title: "Land Management", Description: "Record each plot with its location, area and soil type, linked to its owner.", IconName: "Map", IconColor: "amber"},
	{Title: "Scheme Management", Description: "Publish government schemes and track farmer applications from pending to approved.", IconName: "FileText", IconColor: "blue"},
	{Title: "Aerial Analytics", Description: "Analyse drone and satellite imagery for crop health and land use.", IconName: "Camera", IconColor: "purple"},
	{Title: "Role-Based Access", Description: "Give officers, field staff and administrators the access their role needs.", IconName: "Shield", IconColor: "red"},
	{Title: "Dashboards", Description: "Follow registrations, approvals and active schemes at a glance.", IconName: "BarChart", IconColor: "teal"},
}

func main() {
	file := flag.String("file", "", "optional .csv or .xlsx file with title,description,icon_name,icon_color columns")
	flag.Parse()

	// Load config and connect to database
	cfg := config.LoadConfig()
	if _, err := logger.Init(cfg.LogMode); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()
	database.ConnectDb()

	features := defaultFeatures
	if *file != "" {
		records, err := readRecords(*file)
		if err != nil {
			logger.Log.Fatal("Failed to read features file", "file", *file, "error", err)
		}
		if features, err = parseFeatures(records); err != nil {
			logger.Log.Fatal("Invalid features file", "file", *file, "error", err)
		}
	}

	inserted, err := seedFeatures(context.Background(), features)
	if err != nil {
		logger.Log.Fatal("Failed to seed features", "error", err)
	}
	logger.Log.Info("Feature seeding finished", "inserted", inserted)
}

// seedFeatures inserts features only when the table is empty, so reruns are no-ops.
func seedFeatures(ctx context.Context, features []models.Feature) (int, error) {
	n, err := database.Database.Count(ctx, &models.Feature{})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Log.Info("Features already present, skipping", "count", n)
		return 0, nil
	}

	inserted := 0
	for _, f := range features {
		if err := database.Database.Create(ctx, &f); err != nil {
			return inserted, fmt.Errorf("insert %q: %w", f.Title, err)
		}
		inserted++
	}
	return inserted, nil
}

// readRecords returns every row of a CSV file or of the first sheet of an XLSX workbook.
func readRecords(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		x, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		return x.GetRows(sheets[0])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csv.NewReader(f).ReadAll()
}

// parseFeatures maps rows onto features using the header row. Blank rows are skipped.
func parseFeatures(records [][]string) ([]models.Feature, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("file is empty or has only headers")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"title", "description", "icon_name", "icon_color"} {
		if _, ok := headerIndex[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var features []models.Feature
	for i, row := range records[1:] {
		f := models.Feature{
			Title:       getField(row, headerIndex, "title"),
			Description: getField(row, headerIndex, "description"),
			IconName:    getField(row, headerIndex, "icon_name"),
			IconColor:   getField(row, headerIndex, "icon_color"),
		}
		if f == (models.Feature{}) {
			continue
		}
		if f.Title == "" || f.Description == "" || f.IconName == "" || f.IconColor == "" {
			return nil, fmt.Errorf("row %d: every column is required", i+2)
		}
		features = append(features, f)
	}
	return features, nil
}

func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
