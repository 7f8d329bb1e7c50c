package historyservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound means no snapshot matched the given id or prefix.
	ErrNotFound = errors.New("snapshot not found")
	// ErrAmbiguous means an id prefix matched more than one snapshot.
	ErrAmbiguous = errors.New("snapshot id prefix is ambiguous")
)

// Snapshot is one recorded system report.
type Snapshot struct {
	ID       string
	TakenAt  time.Time
	Platform string
	Hostname string
	Report   json.RawMessage
}

type HistoryService struct {
	db *sql.DB
}

// NewHistoryService opens (or creates) the snapshot database at dbPath and
// ensures the schema exists. Use ":memory:" for an ephemeral database.
func NewHistoryService(dbPath string) (*HistoryService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// database/sql pools connections, but every connection to ":memory:"
	// is a separate database. One connection keeps file databases safe
	// from sqlite write contention too.
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		taken_at TEXT NOT NULL,
		platform TEXT NOT NULL,
		hostname TEXT,
		report TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots (taken_at);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &HistoryService{db: db}, nil
}

// Close closes the DB
func (s *HistoryService) Close() error {
	return s.db.Close()
}

// Record stores a snapshot.
func (s *HistoryService) Record(ctx context.Context, snap Snapshot) error {
	if strings.TrimSpace(snap.ID) == "" {
		return fmt.Errorf("snapshot id cannot be empty")
	}
	if len(snap.Report) == 0 {
		return fmt.Errorf("snapshot report cannot be empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, taken_at, platform, hostname, report) VALUES (?, ?, ?, ?, ?)`,
		snap.ID,
		snap.TakenAt.UTC().Format(time.RFC3339Nano),
		snap.Platform,
		snap.Hostname,
		string(snap.Report),
	)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}
	return nil
}

// List returns snapshot metadata (no report bodies), newest first. A limit
// <= 0 returns everything.
func (s *HistoryService) List(ctx context.Context, limit int) ([]Snapshot, error) {
	query := `SELECT id, taken_at, platform, hostname FROM snapshots ORDER BY taken_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan, false)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Get returns the snapshot whose id matches idPrefix, which may be a unique
// prefix of the full id. Returns ErrNotFound when nothing matches and
// ErrAmbiguous when the prefix matches more than one snapshot.
func (s *HistoryService) Get(ctx context.Context, idPrefix string) (Snapshot, error) {
	idPrefix = strings.TrimSpace(idPrefix)
	if idPrefix == "" {
		return Snapshot{}, fmt.Errorf("snapshot id cannot be empty")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, taken_at, platform, hostname, report FROM snapshots WHERE id LIKE ? || '%' LIMIT 2`,
		idPrefix,
	)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan, true)
		if err != nil {
			return Snapshot{}, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	switch len(snaps) {
	case 0:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	case 1:
		return snaps[0], nil
	default:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrAmbiguous, idPrefix)
	}
}

// Latest returns the most recent snapshot, report body included.
func (s *HistoryService) Latest(ctx context.Context) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, taken_at, platform, hostname, report FROM snapshots ORDER BY taken_at DESC LIMIT 1`)

	snap, err := scanSnapshot(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Prune deletes all snapshots except the newest keep, returning how many
// were removed.
func (s *HistoryService) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY taken_at DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// scanSnapshot reads one row. The column order must match the SELECTs above;
// withReport toggles whether the report column is part of the row.
func scanSnapshot(scan func(...interface{}) error, withReport bool) (Snapshot, error) {
	var snap Snapshot
	var takenAt, report string

	dest := []interface{}{&snap.ID, &takenAt, &snap.Platform, &snap.Hostname}
	if withReport {
		dest = append(dest, &report)
	}
	if err := scan(dest...); err != nil {
		return Snapshot{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, takenAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("bad taken_at value %q: %w", takenAt, err)
	}
	snap.TakenAt = ts
	if withReport {
		snap.Report = json.RawMessage(report)
	}
	return snap, nil
}
