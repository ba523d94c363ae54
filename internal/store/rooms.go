package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// RoomSentinel is returned when the room table has no rows.
const RoomSentinel = "No room details available."

// RoomRecord one row of the room_data table
type RoomRecord struct {
	Title       string
	Description string
}

// RoomStore read-only access to the room listing.
type RoomStore struct {
	db      *sql.DB
	timeout time.Duration
	logger  *zap.Logger
}

// NewRoomStore opens the sqlite database and verifies the connection.
func NewRoomStore(path string, timeout time.Duration, logger *zap.Logger) (*RoomStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open room database: %w", err)
	}

	// sqlite allows a single writer; one pooled connection avoids busy errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping room database: %w", err)
	}

	return &RoomStore{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close releases the connection pool.
func (s *RoomStore) Close() error {
	return s.db.Close()
}

// FetchRoomContext reads all rooms and formats them as prompt context.
// Rooms are fetched fresh on every call; nothing is cached.
func (s *RoomStore) FetchRoomContext(ctx context.Context) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT title, description FROM room_data`)
	if err != nil {
		return "", fmt.Errorf("query room_data: %w", err)
	}
	defer rows.Close()

	var blocks []string
	for rows.Next() {
		var r RoomRecord
		if err := rows.Scan(&r.Title, &r.Description); err != nil {
			return "", fmt.Errorf("scan room row: %w", err)
		}
		blocks = append(blocks, fmt.Sprintf("Room: %s\nDescription: %s", r.Title, r.Description))
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate room rows: %w", err)
	}

	if len(blocks) == 0 {
		s.logger.Warn("room table is empty, using sentinel context")
		return RoomSentinel, nil
	}

	s.logger.Debug("room context fetched", zap.Int("rooms", len(blocks)))
	return strings.Join(blocks, "\n\n"), nil
}
