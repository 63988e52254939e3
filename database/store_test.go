package database_test

import (
	"context"
	"testing"

	"kisan/config"
	"kisan/database"
	"kisan/logger"
	"kisan/models"
	"kisan/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateAssignsIDAndRegistrationDate(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()

	f := testutil.SeedFarmer(t, ctx, "Asha")
	require.NotZero(t, f.ID)

	var got models.Farmer
	require.NoError(t, database.Database.Find(ctx, &got, f.ID))
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, models.FormatDate(models.Today()), models.FormatDate(got.DateRegistered))
	assert.True(t, decimal.RequireFromString("2.5").Equal(got.LandArea))
}

func TestFindMissingIsNotFound(t *testing.T) {
	testutil.NewDB(t)
	var f models.Farmer
	assert.ErrorIs(t, database.Database.Find(context.Background(), &f, 404), database.ErrNotFound)
}

func TestListInInsertionOrder(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	for _, name := range []string{"C", "A", "B"} {
		testutil.SeedScheme(t, ctx, name)
	}

	var schemes []models.Scheme
	require.NoError(t, database.Database.List(ctx, &schemes))
	require.Len(t, schemes, 3)
	assert.Equal(t, "C", schemes[0].Name)
	assert.Equal(t, "A", schemes[1].Name)
	assert.Equal(t, "B", schemes[2].Name)
}

func TestWithLandsPreloadsOrderedLands(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	other := testutil.SeedFarmer(t, ctx, "Bala")
	testutil.SeedLand(t, ctx, f.ID, "L1")
	testutil.SeedLand(t, ctx, other.ID, "elsewhere")
	testutil.SeedLand(t, ctx, f.ID, "L2")

	var got models.Farmer
	require.NoError(t, database.Database.Find(ctx, &got, f.ID, database.WithLands))
	require.Len(t, got.Lands, 2)
	assert.Equal(t, "L1", got.Lands[0].Location)
	assert.Equal(t, "L2", got.Lands[1].Location)
}

func TestCreateWithMissingReferenceLeavesStoreUnchanged(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()

	land := &models.Land{FarmerID: 99, Location: "L1", Area: decimal.RequireFromString("1"), SoilType: "loam"}
	err := database.Database.Create(ctx, land, database.Reference{Field: "farmer", Model: &models.Farmer{}, ID: 99})

	var rie *database.ReferentialIntegrityError
	require.ErrorAs(t, err, &rie)
	assert.Equal(t, "farmer", rie.Field)
	assert.EqualValues(t, 99, rie.ID)

	n, err := database.Database.Count(ctx, &models.Land{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestForeignKeyConstraintIsEnforcedByStore(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()

	// no Reference passed: the database constraint has to reject it
	app := &models.SchemeApplication{FarmerID: 5, SchemeID: 6}
	err := database.Database.Create(ctx, app)
	require.Error(t, err)

	n, _ := database.Database.Count(ctx, &models.SchemeApplication{})
	assert.Zero(t, n)
}

func TestUpdateWritesOnlyGivenColumns(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")

	var rec models.Farmer
	err := database.Database.Update(ctx, &rec, f.ID, map[string]any{"village": "Sitapur"})
	require.NoError(t, err)

	var got models.Farmer
	require.NoError(t, database.Database.Find(ctx, &got, f.ID))
	assert.Equal(t, "Sitapur", got.Village)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, models.FormatDate(f.DateRegistered), models.FormatDate(got.DateRegistered))
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	testutil.NewDB(t)
	var rec models.Scheme
	err := database.Database.Update(context.Background(), &rec, 3, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUpdateWithMissingReferenceIsRejected(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	land := testutil.SeedLand(t, ctx, f.ID, "L1")

	var rec models.Land
	err := database.Database.Update(ctx, &rec, land.ID, map[string]any{"farmer_id": uint(77)},
		database.Reference{Field: "farmer", Model: &models.Farmer{}, ID: 77})
	var rie *database.ReferentialIntegrityError
	require.ErrorAs(t, err, &rie)

	var got models.Land
	require.NoError(t, database.Database.Find(ctx, &got, land.ID))
	assert.Equal(t, f.ID, got.FarmerID)
}

func TestDeleteFarmerCascades(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	keep := testutil.SeedFarmer(t, ctx, "Bala")
	s := testutil.SeedScheme(t, ctx, "PM-KISAN")
	land := testutil.SeedLand(t, ctx, f.ID, "L1")
	keptLand := testutil.SeedLand(t, ctx, keep.ID, "L2")
	app := testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusApproved)
	keptApp := testutil.SeedApplication(t, ctx, keep.ID, s.ID, models.StatusPending)

	require.NoError(t, database.Database.Delete(ctx, &models.Farmer{}, f.ID))

	assert.ErrorIs(t, database.Database.Find(ctx, &models.Farmer{}, f.ID), database.ErrNotFound)
	assert.ErrorIs(t, database.Database.Find(ctx, &models.Land{}, land.ID), database.ErrNotFound)
	assert.ErrorIs(t, database.Database.Find(ctx, &models.SchemeApplication{}, app.ID), database.ErrNotFound)

	assert.NoError(t, database.Database.Find(ctx, &models.Land{}, keptLand.ID))
	assert.NoError(t, database.Database.Find(ctx, &models.SchemeApplication{}, keptApp.ID))
	assert.NoError(t, database.Database.Find(ctx, &models.Scheme{}, s.ID))
}

func TestDeleteSchemeCascadesToApplications(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	s := testutil.SeedScheme(t, ctx, "PM-KISAN")
	other := testutil.SeedScheme(t, ctx, "Soil Health Card")
	a1 := testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusPending)
	a2 := testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusRejected)
	kept := testutil.SeedApplication(t, ctx, f.ID, other.ID, models.StatusPending)

	require.NoError(t, database.Database.Delete(ctx, &models.Scheme{}, s.ID))

	assert.ErrorIs(t, database.Database.Find(ctx, &models.SchemeApplication{}, a1.ID), database.ErrNotFound)
	assert.ErrorIs(t, database.Database.Find(ctx, &models.SchemeApplication{}, a2.ID), database.ErrNotFound)
	assert.NoError(t, database.Database.Find(ctx, &models.SchemeApplication{}, kept.ID))
	assert.NoError(t, database.Database.Find(ctx, &models.Farmer{}, f.ID))
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	testutil.NewDB(t)
	assert.ErrorIs(t, database.Database.Delete(context.Background(), &models.Feature{}, 1), database.ErrNotFound)
}

func TestWithApplicationRefsLoadsNames(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	s := testutil.SeedScheme(t, ctx, "PM-KISAN")
	a := testutil.SeedApplication(t, ctx, f.ID, s.ID, "")

	var got models.SchemeApplication
	require.NoError(t, database.Database.Find(ctx, &got, a.ID, database.WithApplicationRefs))
	assert.Equal(t, "Asha", got.Farmer.Name)
	assert.Equal(t, "PM-KISAN", got.Scheme.Name)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestCountWithCondition(t *testing.T) {
	testutil.NewDB(t)
	ctx := context.Background()
	f := testutil.SeedFarmer(t, ctx, "Asha")
	s := testutil.SeedScheme(t, ctx, "PM-KISAN")
	testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusApproved)
	testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusApproved)
	testutil.SeedApplication(t, ctx, f.ID, s.ID, models.StatusPending)

	n, err := database.Database.Count(ctx, &models.SchemeApplication{}, "status = ?", models.StatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestPing(t *testing.T) {
	testutil.NewDB(t)
	assert.NoError(t, database.Database.Ping(context.Background()))
	assert.Error(t, database.DbInstance{}.Ping(context.Background()))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "x")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	pg := database.DSN(&config.Config{DBDriver: "postgres", DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "kisan"})
	assert.Equal(t, "host=db user=u password=p dbname=kisan port=5432 sslmode=disable", pg)

	my := database.DSN(&config.Config{DBDriver: "mysql", DBHost: "db", DBPort: "3307", DBUser: "u", DBPassword: "p", DBName: "kisan"})
	assert.Equal(t, "u:p@tcp(db:3307)/kisan?charset=utf8mb4&parseTime=True&loc=UTC", my)

	lite := database.DSN(&config.Config{DBDriver: "sqlite", DBName: "kisan.db"})
	assert.Equal(t, "file:kisan.db?_foreign_keys=on", lite)

	assert.Contains(t, my, "loc=UTC", "stored dates are UTC midnights")

	override := database.DSN(&config.Config{DBDriver: "postgres", DBDSN: "postgres://x"})
	assert.Equal(t, "postgres://x", override)
}

func TestMissingRowIsNotLoggedByGorm(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	t.Cleanup(func() { logger.Log = prev })

	testutil.NewDB(t)
	ctx := context.Background()

	var f models.Farmer
	require.ErrorIs(t, database.Database.Find(ctx, &f, 404), database.ErrNotFound)
	require.ErrorIs(t, database.Database.Update(ctx, &f, 404, map[string]any{"name": "x"}), database.ErrNotFound)
	assert.Zero(t, logs.FilterField(zap.String("component", "gorm")).Len())

	// real failures still go through the application logger
	_ = database.Database.Db.Exec("SELECT * FROM no_such_table").Error
	assert.Equal(t, 1, logs.FilterField(zap.String("component", "gorm")).Len())
}
