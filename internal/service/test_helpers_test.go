package service_test

import (
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvpathlete/athlete/internal/catalog"
	"github.com/mvpathlete/athlete/internal/db"
	"github.com/mvpathlete/athlete/internal/model"
	"github.com/mvpathlete/athlete/internal/service"
	"github.com/mvpathlete/athlete/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return newTestDBAt(t, filepath.Join(t.TempDir(), "athlete.db"))
}

func newTestDBAt(t *testing.T, path string) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

var testFoods = []catalog.Entry{
	{Name: "chicken breast", Fact: model.NutritionFact{CaloriesPer100: 165, ProteinPer100: 31, CarbsPer100: 0, FatPer100: 3.6}},
	{Name: "white rice", Fact: model.NutritionFact{CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatPer100: 0.3}},
	{Name: "milk", Fact: model.NutritionFact{CaloriesPer100: 42, ProteinPer100: 3.4, CarbsPer100: 5, FatPer100: 1, Unit: "ml"}},
	{Name: "brown rice", Fact: model.NutritionFact{CaloriesPer100: 112, ProteinPer100: 2.6, CarbsPer100: 24, FatPer100: 0.9}},
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 12, 0, 0, 0, time.Local) }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestTracker(t *testing.T, kv store.KV, opts ...service.Option) *service.Tracker {
	t.Helper()
	holder := catalog.ReadyHolder(catalog.New(testFoods))
	opts = append([]service.Option{
		service.WithClock(fixedClock(2024, time.January, 1)),
		service.WithIDs(sequentialIDs()),
	}, opts...)
	return service.NewTracker(kv, holder, zerolog.Nop(), opts...)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newMemoryKV() *store.Memory {
	return store.NewMemory()
}
