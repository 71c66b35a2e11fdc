package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderUnconfigured(t *testing.T) {
	h := NewHolder("projects", nil)
	assert.False(t, h.Configured())
	assert.Equal(t, "projects", h.Collection())

	called := false
	err := h.View(func(Store) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestHolderSwapClosesPrevious(t *testing.T) {
	first := NewMemoryStore("first")
	second := NewMemoryStore("second")
	h := NewHolder("projects", first)

	require.NoError(t, h.Swap(second))
	assert.True(t, first.Closed())
	assert.False(t, second.Closed())

	var seen string
	require.NoError(t, h.View(func(s Store) error { seen = s.ProjectID(); return nil }))
	assert.Equal(t, "second", seen)

	require.NoError(t, h.Close())
	assert.True(t, second.Closed())
	assert.False(t, h.Configured())
}

func TestMemoryStoreListPreservesOrder(t *testing.T) {
	m := NewMemoryStore("p")
	m.Add("projects", Document{ID: "a"})
	m.Add("projects", Document{ID: "b"})

	docs, err := m.ListDocuments(context.Background(), "projects")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, 1, m.Calls())
}

func TestOpenRejectsBadCredentials(t *testing.T) {
	_, err := Open(context.Background(), ServiceAccount{ProjectID: "p"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = Open(context.Background(), ServiceAccount{ProjectID: "p", PrivateKey: "???", ClientEmail: "e"})
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read firebase credentials")
}
