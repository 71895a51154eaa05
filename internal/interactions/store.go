package interactions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/menubot/internal/db"
	"github.com/ziadkadry99/menubot/internal/router"
)

// ErrNotFound is returned by GetByID for an unknown id.
var ErrNotFound = errors.New("interaction not found")

// Store persists interaction entries in SQLite.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Log inserts a new entry. If entry.ID is empty a UUID is generated and a
// zero Timestamp is set to the current time.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	payload := []byte("{}")
	if len(entry.Payload) > 0 {
		var err error
		if payload, err = json.Marshal(entry.Payload); err != nil {
			return fmt.Errorf("marshalling payload: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (id, timestamp, platform, user_id, action, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.UTC().Format(time.DateTime),
		entry.Platform,
		entry.UserID,
		entry.Action,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

// Record logs a router event received on platform.
func (s *Store) Record(ctx context.Context, platform string, ev router.Event) error {
	return s.Log(ctx, Entry{
		Platform: platform,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Payload:  ev.Payload,
	})
}

// GetByID retrieves a single entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, platform, user_id, action, payload
		FROM interactions WHERE id = ?`, id)

	e, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// QueryFilter controls which entries are returned by Query.
type QueryFilter struct {
	UserID   string
	Platform string
	Action   string
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

func (f QueryFilter) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.UserID != "" {
		clauses = append(clauses, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.Platform != "" {
		clauses = append(clauses, "platform = ?")
		args = append(args, f.Platform)
	}
	if f.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, f.Action)
	}
	if f.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, f.Since.UTC().Format(time.DateTime))
	}
	if f.Until != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, f.Until.UTC().Format(time.DateTime))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Query returns entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	where, args := filter.where()
	query := "SELECT id, timestamp, platform, user_id, action, payload FROM interactions" +
		where + " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	} else if filter.Offset > 0 {
		query += fmt.Sprintf(" LIMIT -1 OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// CountByAction returns per-action totals for entries matching the filter,
// most frequent first. Limit and Offset are ignored.
func (s *Store) CountByAction(ctx context.Context, filter QueryFilter) ([]ActionCount, error) {
	where, args := filter.where()
	rows, err := s.db.QueryContext(ctx,
		"SELECT action, COUNT(*) FROM interactions"+where+" GROUP BY action ORDER BY COUNT(*) DESC, action",
		args...)
	if err != nil {
		return nil, fmt.Errorf("counting interactions: %w", err)
	}
	defer rows.Close()

	counts := []ActionCount{}
	for rows.Next() {
		var c ActionCount
		if err := rows.Scan(&c.Action, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DeleteBefore removes all entries older than the given time.
// Returns the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM interactions WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old interactions: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Entry, error) {
	var (
		e           Entry
		ts, payload string
	)

	if err := sc.Scan(&e.ID, &ts, &e.Platform, &e.UserID, &e.Action, &payload); err != nil {
		return nil, err
	}

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.Timestamp = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		e.Timestamp = t
	}

	if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil || len(e.Payload) == 0 {
		e.Payload = nil
	}

	return &e, nil
}
