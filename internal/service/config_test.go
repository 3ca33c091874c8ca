package service_test

import (
	"testing"

	"github.com/mvpathlete/athlete/internal/service"
)

func TestConfigSetGetAndValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetConfig(db, "Suggest_Limit", "5"); err != nil {
		t.Fatalf("set suggest_limit: %v", err)
	}
	v, found, err := service.GetConfig(db, service.ConfigSuggestLimit)
	if err != nil || !found || v != "5" {
		t.Fatalf("get suggest_limit: %q %v %v", v, found, err)
	}
	if err := service.SetConfig(db, service.ConfigSuggestLimit, "-1"); err == nil {
		t.Fatalf("expected negative limit to fail")
	}
	if err := service.SetConfig(db, "theme", "dark"); err == nil {
		t.Fatalf("expected unknown key to fail")
	}

	all, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 1 || all[service.ConfigSuggestLimit] != "5" {
		t.Fatalf("unexpected config list: %+v", all)
	}
}

func TestResolveCatalogSourcePrecedence(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	got, err := service.ResolveCatalogSource(db, "", "/default.json")
	if err != nil || got != "/default.json" {
		t.Fatalf("expected fallback, got %q %v", got, err)
	}
	if err := service.SetConfig(db, service.ConfigCatalogSource, "https://example.com/foods.json"); err != nil {
		t.Fatalf("set catalog_source: %v", err)
	}
	got, err = service.ResolveCatalogSource(db, "", "/default.json")
	if err != nil || got != "https://example.com/foods.json" {
		t.Fatalf("expected stored source, got %q %v", got, err)
	}
	got, err = service.ResolveCatalogSource(db, " ./local.json ", "/default.json")
	if err != nil || got != "./local.json" {
		t.Fatalf("expected override, got %q %v", got, err)
	}
}

func TestResolveSuggestLimit(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if n, err := service.ResolveSuggestLimit(db, 0); err != nil || n != 0 {
		t.Fatalf("expected 0 default, got %d %v", n, err)
	}
	if err := service.SetConfig(db, service.ConfigSuggestLimit, "3"); err != nil {
		t.Fatalf("set suggest_limit: %v", err)
	}
	if n, err := service.ResolveSuggestLimit(db, 0); err != nil || n != 3 {
		t.Fatalf("expected stored 3, got %d %v", n, err)
	}
	if n, err := service.ResolveSuggestLimit(db, 12); err != nil || n != 12 {
		t.Fatalf("expected override 12, got %d %v", n, err)
	}
}
