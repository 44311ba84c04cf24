package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldsmith/worldsmith/internal/project"
	"github.com/worldsmith/worldsmith/internal/region"
)

func newTestStore(t *testing.T) *DirStore {
	t.Helper()
	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func testDoc(worldName string) *project.Document {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	return project.New(worldName, region.Overworld, now)
}

func TestDirStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := testDoc("Skyreach Realm")
	require.NoError(t, s.Save(ctx, doc))

	back, err := s.Load(ctx, "skyreach_realm")
	require.NoError(t, err)
	assert.Equal(t, "Skyreach Realm", back.WorldName)
	assert.Equal(t, doc.ExportDate, back.ExportDate)
}

func TestDirStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := testDoc("world")
	require.NoError(t, s.Save(ctx, doc))
	doc.Seed = "42"
	require.NoError(t, s.Save(ctx, doc))

	back, err := s.Load(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, "42", back.Seed)

	slugs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"world"}, slugs)
}

func TestDirStoreList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Save(ctx, testDoc("Beta World")))
	require.NoError(t, s.Save(ctx, testDoc("Alpha World")))

	slugs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha_world", "beta_world"}, slugs)
}

func TestDirStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "nope"), ErrNotFound)
}

func TestDirStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Save(ctx, testDoc("world")))
	require.NoError(t, s.Delete(ctx, "world"))

	_, err := s.Load(ctx, "world")
	assert.ErrorIs(t, err, ErrNotFound)
}
