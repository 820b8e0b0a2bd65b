package service

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cityhunt/internal/blob"
	"cityhunt/internal/catalog"
	"cityhunt/internal/models"
	"cityhunt/internal/repository"
	"cityhunt/internal/storage"

	"github.com/jonboulle/clockwork"
)

type testEnv struct {
	services *Services
	repos    *repository.Repositories
	blobs    *blob.Store
	clock    *clockwork.FakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Mission{},
		&models.Submission{},
		&models.Message{},
		&models.Broadcast{},
		&models.BroadcastReceipt{},
		&models.GameState{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repos := repository.NewRepositories(db)
	if err := catalog.Seed(repos.Mission); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	blobs, err := blob.NewStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}

	clock := clockwork.NewFakeClock()
	services, err := NewServices(repos, blobs, Options{
		GMPassword:          "hunter2",
		TokenSecret:         "test-secret",
		TokenTTL:            time.Hour,
		DefaultRoundMinutes: 75,
		Clock:               clock,
	})
	if err != nil {
		t.Fatalf("services: %v", err)
	}

	return &testEnv{services: services, repos: repos, blobs: blobs, clock: clock}
}

func (e *testEnv) join(t *testing.T, name string) uint {
	t.Helper()
	id, err := e.services.Round.Join(name)
	if err != nil {
		t.Fatalf("join %q: %v", name, err)
	}
	return id
}

func (e *testEnv) submit(t *testing.T, teamID, missionID uint) uint {
	t.Helper()
	id, err := e.services.Submission.Submit(teamID, missionID,
		strings.NewReader("fake image bytes"), "proof.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("submit team=%d mission=%d: %v", teamID, missionID, err)
	}
	return id
}
