//go:build integration

package bandplan_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"insuregate/internal/bandplan"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type pgFixture struct {
	repo  bandplan.Repository
	db    *sql.DB
	orgID uuid.UUID
}

func openMappingRepo(t *testing.T) *pgFixture {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS salary_bands (
            id uuid PRIMARY KEY,
            organization_id uuid NOT NULL,
            name text NOT NULL,
            min_salary numeric NOT NULL,
            max_salary numeric NOT NULL,
            description text,
            created_at timestamptz NOT NULL DEFAULT now(),
            updated_at timestamptz NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS plans (
            id uuid PRIMARY KEY,
            insurer_id uuid NOT NULL,
            name text NOT NULL,
            base_premium bigint NOT NULL,
            coverage_amount bigint NOT NULL,
            status text NOT NULL,
            created_at timestamptz NOT NULL DEFAULT now(),
            updated_at timestamptz NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS band_plan_mappings (
            id uuid PRIMARY KEY,
            organization_id uuid NOT NULL,
            salary_band_id uuid NOT NULL UNIQUE,
            plan_id uuid NOT NULL,
            is_default boolean NOT NULL DEFAULT true,
            created_at timestamptz NOT NULL DEFAULT now(),
            updated_at timestamptz NOT NULL DEFAULT now()
        )`,
	} {
		_, err = db.Exec(ddl)
		assert.NoError(t, err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return &pgFixture{
		repo:  bandplan.NewRepository(gormDB, db),
		db:    db,
		orgID: uuid.New(),
	}
}

func (f *pgFixture) band(t *testing.T, name string, min, max float64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := f.db.Exec(
		`INSERT INTO salary_bands (id, organization_id, name, min_salary, max_salary) VALUES ($1, $2, $3, $4, $5)`,
		id, f.orgID, name, min, max,
	)
	assert.NoError(t, err)
	return id
}

func (f *pgFixture) plan(t *testing.T, name string, basePremium int64, status string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := f.db.Exec(
		`INSERT INTO plans (id, insurer_id, name, base_premium, coverage_amount, status) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, uuid.New(), name, basePremium, basePremium*200, status,
	)
	assert.NoError(t, err)
	return id
}

func (f *pgFixture) mapBand(t *testing.T, bandID, planID uuid.UUID) {
	t.Helper()
	err := f.repo.Upsert(context.Background(), &bandplan.BandPlanMapping{
		ID:             uuid.New(),
		OrganizationID: f.orgID,
		SalaryBandID:   bandID,
		PlanID:         planID,
		IsDefault:      true,
	})
	assert.NoError(t, err)
}

func TestResolveForSalary_InclusiveUpperBound(t *testing.T) {
	f := openMappingRepo(t)
	ctx := context.Background()

	basicBand := f.band(t, "Basic band", 0, 300000)
	standardBand := f.band(t, "Standard band", 300001, 600000)
	basic := f.plan(t, "Basic", 500, "active")
	standard := f.plan(t, "Standard", 900, "active")
	f.mapBand(t, basicBand, basic)
	f.mapBand(t, standardBand, standard)

	// a salary equal to a band's max_salary belongs to that band
	resolved, err := f.repo.ResolveForSalary(ctx, f.orgID.String(), 300000)
	assert.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Equal(t, "Basic", resolved.PlanName)
	assert.Equal(t, int64(500), resolved.BasePremium)

	resolved, err = f.repo.ResolveForSalary(ctx, f.orgID.String(), 300001)
	assert.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Equal(t, "Standard", resolved.PlanName)
	assert.Equal(t, int64(900), resolved.BasePremium)
}

func TestResolveForSalary_GapsAndInactivePlansResolveToNil(t *testing.T) {
	f := openMappingRepo(t)
	ctx := context.Background()

	mapped := f.band(t, "Mapped band", 0, 300000)
	f.band(t, "Unmapped band", 300001, 600000)
	retiredBand := f.band(t, "Retired plan band", 600001, 900000)
	f.mapBand(t, mapped, f.plan(t, "Basic", 500, "active"))
	f.mapBand(t, retiredBand, f.plan(t, "Retired", 700, "inactive"))

	// no band contains the salary
	resolved, err := f.repo.ResolveForSalary(ctx, f.orgID.String(), 950000)
	assert.NoError(t, err)
	assert.Nil(t, resolved)

	// band exists but carries no mapping
	resolved, err = f.repo.ResolveForSalary(ctx, f.orgID.String(), 400000)
	assert.NoError(t, err)
	assert.Nil(t, resolved)

	// mapped plan is no longer active
	resolved, err = f.repo.ResolveForSalary(ctx, f.orgID.String(), 700000)
	assert.NoError(t, err)
	assert.Nil(t, resolved)
}
