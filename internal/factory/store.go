package factory

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/config"
	storepkg "github.com/StronkOnes/BrieflyOS/internal/store"
	"github.com/StronkOnes/BrieflyOS/internal/store/jsonfile"
	"github.com/StronkOnes/BrieflyOS/internal/store/sqlite"
)

// NewStore selects the storage adapter based on cfg.DBDriver.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "jsonfile":
		return jsonfile.New(cfg.DataDir, log)
	case "sqlite":
		return sqlite.New(filepath.Join(cfg.DataDir, "briefly.db"))
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
