package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore()

	_, err := store.Load("kasir")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	store := NewSnapshotStore()

	require.NoError(t, store.Save("kasir", []byte("state")))

	data, err := store.Load("kasir")
	require.NoError(t, err)
	assert.Equal(t, []byte("state"), data)
}

func TestSnapshotStore_CopiesData(t *testing.T) {
	store := NewSnapshotStore()

	buf := []byte("state")
	require.NoError(t, store.Save("kasir", buf))
	buf[0] = 'X'

	data, err := store.Load("kasir")
	require.NoError(t, err)
	assert.Equal(t, []byte("state"), data, "mutating the caller's buffer must not change the stored snapshot")
}
