package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/store"
	"github.com/StronkOnes/BrieflyOS/internal/store/storetest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestJSONFileStoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return newTestStore(t) })
}

func TestMissingFileReadsAsEmpty(t *testing.T) {
	s := newTestStore(t)
	leads, err := s.Leads().List(context.Background())
	require.NoError(t, err)
	require.Empty(t, leads)
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leads.json"), []byte("{not json"), 0o644))

	leads, err := s.Leads().List(context.Background())
	require.NoError(t, err)
	require.Empty(t, leads)

	// A write after a corrupt read starts the collection over rather than failing.
	_, err = s.Leads().Create(context.Background(), &model.Lead{ID: 1, Name: "A", Email: "a@x.com", Stage: model.LeadStageNew})
	require.NoError(t, err)
	leads, err = s.Leads().List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
}

func TestWriteReplacesWholeFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = s.Opportunities().Create(ctx, &model.Opportunity{ID: 1, LeadName: "A", Stage: model.OppStageProposal})
	require.NoError(t, err)
	_, err = s.Opportunities().Create(ctx, &model.Opportunity{ID: 2, LeadName: "B", Stage: model.OppStageWon})
	require.NoError(t, err)
	require.NoError(t, s.Opportunities().Delete(ctx, 1))

	// No temp file is left behind after the rename.
	_, statErr := os.Stat(filepath.Join(dir, "opportunities.json.tmp"))
	require.True(t, os.IsNotExist(statErr))

	opps, err := s.Opportunities().List(ctx)
	require.NoError(t, err)
	require.Len(t, opps, 1)
	require.Equal(t, int64(2), opps[0].ID)
}
