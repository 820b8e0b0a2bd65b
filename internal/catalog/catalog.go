package catalog

import (
	"cityhunt/internal/repository"

	log "github.com/sirupsen/logrus"
)

// Seed inserts the mission catalog on first startup. It is a no-op when the
// missions table already has rows, so restarting mid-round never duplicates
// or reorders the catalog.
func Seed(missions repository.MissionRepository) error {
	count, err := missions.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := missions.CreateAll(Missions); err != nil {
		return err
	}
	log.Infof("seeded mission catalog with %d entries", len(Missions))
	return nil
}
