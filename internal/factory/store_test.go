package factory

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StronkOnes/BrieflyOS/internal/config"
)

func TestNewStoreJSONFile(t *testing.T) {
	cfg := config.NewForTesting(t.TempDir())
	cfg.DBDriver = "jsonfile"

	st, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { _ = st.Close() }()
	assert.NoError(t, st.HealthCheck(context.Background()))
}

func TestNewStoreSQLite(t *testing.T) {
	cfg := config.NewForTesting(t.TempDir())
	cfg.DBDriver = "sqlite"

	st, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { _ = st.Close() }()
	assert.NoError(t, st.HealthCheck(context.Background()))
}

func TestNewStoreUnknownDriver(t *testing.T) {
	cfg := config.NewForTesting(t.TempDir())
	cfg.DBDriver = "mongodb"

	_, err := NewStore(cfg, zerolog.Nop())
	assert.Error(t, err)
}
