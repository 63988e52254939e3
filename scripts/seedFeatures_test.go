package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"kisan/database"
	"kisan/models"
	"kisan/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSeedFeaturesOnlyWhenEmpty(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()

	n, err := seedFeatures(ctx, defaultFeatures)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = seedFeatures(ctx, defaultFeatures)
	require.NoError(t, err)
	assert.Zero(t, n)

	var features []models.Feature
	require.NoError(t, database.Database.List(ctx, &features))
	require.Len(t, features, 6)
	assert.Equal(t, "Farmer Management", features[0].Title)
	assert.Equal(t, "Dashboards", features[5].Title)
}

func TestParseFeatures(t *testing.T) {
	records := [][]string{
		{"Icon_Color", "title", "description", "icon_name"},
		{"green", " Crop Advisory ", "Advice", "Leaf"},
		{"", "", "", ""},
	}
	features, err := parseFeatures(records)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, models.Feature{Title: "Crop Advisory", Description: "Advice", IconName: "Leaf", IconColor: "green"}, features[0])

	_, err = parseFeatures([][]string{{"title", "description"}, {"a", "b"}})
	assert.ErrorContains(t, err, "icon_name")

	_, err = parseFeatures([][]string{{"title", "description", "icon_name", "icon_color"}, {"a", "", "c", "d"}})
	assert.ErrorContains(t, err, "row 2")

	_, err = parseFeatures([][]string{{"title"}})
	assert.Error(t, err)
}

func TestReadRecordsCSVAndXLSX(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "features.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("title,description,icon_name,icon_color\nA,B,C,D\n"), 0o600))
	rows, err := readRecords(csvPath)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"title", "description", "icon_name", "icon_color"}, {"A", "B", "C", "D"}}, rows)

	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"title", "description", "icon_name", "icon_color"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"A", "B", "C", "D"}))
	xlsxPath := filepath.Join(dir, "features.xlsx")
	require.NoError(t, x.SaveAs(xlsxPath))
	require.NoError(t, x.Close())

	rows, err = readRecords(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"title", "description", "icon_name", "icon_color"}, {"A", "B", "C", "D"}}, rows)
}
