package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/togetai/feedback-api/internal/models"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "feedback.json"))
	require.NoError(t, s.Init(context.Background()))
	return s
}

func testEntry(id, email string) models.FeedbackEntry {
	return models.FeedbackEntry{
		ID:           id,
		Role:         "creator",
		Name:         "Ana",
		Email:        email,
		Instagram:    "ana",
		LastCampaign: "c1",
		WorstPart:    "w",
		OneThing:     "t",
		Status:       "pending",
		Timestamp:    time.Now().UTC(),
	}
}

func TestFileStore_InitIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.Insert(ctx, testEntry("1", "ana@x.com")))

	// A second Init must not touch existing contents
	require.NoError(t, s.Init(ctx))

	entries, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ana@x.com", entries[0].Email)
}

func TestFileStore_InsertAndListAll(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.Insert(ctx, testEntry("1", "ana@x.com")))
	require.NoError(t, s.Insert(ctx, testEntry("2", "bob@x.com")))

	entries, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order is preserved
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "2", entries[1].ID)
}

func TestFileStore_InsertDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.Insert(ctx, testEntry("1", "ana@x.com")))

	err := s.Insert(ctx, testEntry("2", "ana@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Duplicate check is case-insensitive
	err = s.Insert(ctx, testEntry("3", "ANA@X.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	entries, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_FindByEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.Insert(ctx, testEntry("1", "ana@x.com")))

	found, err := s.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "1", found.ID)

	missing, err := s.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFileStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.Insert(ctx, testEntry("1", "ana@x.com")))
	require.NoError(t, s.Insert(ctx, testEntry("2", "bob@x.com")))

	found, err := s.DeleteByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, found)

	entries, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ID)

	found, err = s.DeleteByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	entries, err = s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_CorruptFileDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, os.WriteFile(s.path, []byte("not json"), 0o644))

	entries, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@x.com", NormalizeEmail("  ANA@X.com "))
}
