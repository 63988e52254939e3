package testutil

import (
	"context"
	"fmt"
	"testing"

	"kisan/database"
	"kisan/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database, migrates it and installs
// it as database.Database for the duration of the test.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	// one connection keeps shared-cache sqlite free of table locks
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	tb.Cleanup(func() {
		database.Database = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedFarmer(tb testing.TB, ctx context.Context, name string) *models.Farmer {
	tb.Helper()
	f := &models.Farmer{
		Name:     name,
		Village:  "Rampur",
		Phone:    "9876543210",
		LandArea: decimal.RequireFromString("2.50"),
	}
	if err := database.Database.Create(ctx, f); err != nil {
		tb.Fatalf("seed farmer: %v", err)
	}
	return f
}

func SeedLand(tb testing.TB, ctx context.Context, farmerID uint, location string) *models.Land {
	tb.Helper()
	l := &models.Land{
		FarmerID: farmerID,
		Location: location,
		Area:     decimal.RequireFromString("1.00"),
		SoilType: "loam",
	}
	if err := database.Database.Create(ctx, l); err != nil {
		tb.Fatalf("seed land: %v", err)
	}
	return l
}

func SeedScheme(tb testing.TB, ctx context.Context, name string) *models.Scheme {
	tb.Helper()
	start, _ := models.ParseDate("2025-04-01")
	end, _ := models.ParseDate("2026-03-31")
	s := &models.Scheme{
		Name:        name,
		Description: "Income support for small farmers",
		Eligibility: "Land holding below 2 hectares",
		StartDate:   start,
		EndDate:     end,
	}
	if err := database.Database.Create(ctx, s); err != nil {
		tb.Fatalf("seed scheme: %v", err)
	}
	return s
}

func SeedApplication(tb testing.TB, ctx context.Context, farmerID, schemeID uint, status models.ApplicationStatus) *models.SchemeApplication {
	tb.Helper()
	a := &models.SchemeApplication{FarmerID: farmerID, SchemeID: schemeID, Status: status}
	if err := database.Database.Create(ctx, a); err != nil {
		tb.Fatalf("seed application: %v", err)
	}
	return a
}

func SeedFeature(tb testing.TB, ctx context.Context, title string) *models.Feature {
	tb.Helper()
	f := &models.Feature{
		Title:       title,
		Description: "Track registrations and approvals",
		IconName:    "Users",
		IconColor:   "green",
	}
	if err := database.Database.Create(ctx, f); err != nil {
		tb.Fatalf("seed feature: %v", err)
	}
	return f
}
