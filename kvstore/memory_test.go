package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetMissingKey(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetGetDelete(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set("k", []byte("v1")))
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	// Last write wins
	require.NoError(t, m.Set("k", []byte("v2")))
	got, err = m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, m.Delete("k"))
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is fine
	require.NoError(t, m.Delete("k"))
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", []byte("abc")))

	got, err := m.Get("k")
	require.NoError(t, err)
	got[0] = 'z'

	fresh, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), fresh)
}
