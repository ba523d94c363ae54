package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *RoomStore {
	t.Helper()

	s, err := NewRoomStore(":memory:", time.Second, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.db.Exec(`CREATE TABLE room_data (title TEXT, description TEXT)`)
	require.NoError(t, err)

	return s
}

func TestFetchRoomContextFormatsRows(t *testing.T) {
	s := newTestStore(t)

	_, err := s.db.Exec(`INSERT INTO room_data (title, description) VALUES
		('Luxury Ocean View Room 1', 'Sea-facing room with bathtub'),
		('Luxury Ocean View Room 2', 'Sea-facing room with bay bed')`)
	require.NoError(t, err)

	got, err := s.FetchRoomContext(context.Background())
	require.NoError(t, err)

	want := "Room: Luxury Ocean View Room 1\nDescription: Sea-facing room with bathtub\n\n" +
		"Room: Luxury Ocean View Room 2\nDescription: Sea-facing room with bay bed"
	assert.Equal(t, want, got)
}

func TestFetchRoomContextEmptyTableReturnsSentinel(t *testing.T) {
	s := newTestStore(t)

	got, err := s.FetchRoomContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RoomSentinel, got)
	assert.NotEmpty(t, got)
}

func TestFetchRoomContextMissingTableFails(t *testing.T) {
	s, err := NewRoomStore(":memory:", time.Second, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.FetchRoomContext(context.Background())
	assert.Error(t, err)
}

func TestFetchRoomContextFetchesFresh(t *testing.T) {
	s := newTestStore(t)

	first, err := s.FetchRoomContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RoomSentinel, first)

	_, err = s.db.Exec(`INSERT INTO room_data (title, description) VALUES ('Veranda Room', 'Ocean view veranda')`)
	require.NoError(t, err)

	second, err := s.FetchRoomContext(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.Contains(second, "Room: Veranda Room"))
}
