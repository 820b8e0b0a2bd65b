package catalog

import (
	"path/filepath"
	"testing"

	"cityhunt/internal/models"
	"cityhunt/internal/repository"
	"cityhunt/internal/storage"
)

func openTestDB(t *testing.T, path string) *repository.Repositories {
	t.Helper()

	db, err := storage.NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(&models.Mission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db)
}

func TestSeedIsIdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.db")

	repos := openTestDB(t, path)
	if err := Seed(repos.Mission); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	// A second open of the same file simulates a process restart.
	repos = openTestDB(t, path)
	if err := Seed(repos.Mission); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	count, err := repos.Mission.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 21 {
		t.Fatalf("expected 21 missions after repeated seeding, got %d", count)
	}
}

func TestCatalogContent(t *testing.T) {
	if len(Missions) != 21 {
		t.Fatalf("expected 21 catalog entries, got %d", len(Missions))
	}

	for i, m := range Missions {
		if m.Number != i+1 {
			t.Fatalf("expected consecutive numbering, got %d at index %d", m.Number, i)
		}
		if m.TitleDe == "" || m.DescriptionDe == "" || m.TitleEn == "" || m.DescriptionEn == "" {
			t.Fatalf("mission %d has empty bilingual fields: %+v", m.Number, m)
		}
	}

	if Missions[0].TitleDe != "BRUNNEN" || Missions[0].TitleEn != "FOUNTAIN" {
		t.Fatalf("unexpected first mission: %+v", Missions[0])
	}
	if Missions[20].TitleDe != "EXTRA CHALLENGE" {
		t.Fatalf("unexpected last mission: %+v", Missions[20])
	}
}
