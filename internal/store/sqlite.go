// Package store keeps the history of resume analyses in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spigell/resume-analyzer/internal/analysis"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("analysis not found")

// timeLayout is fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one stored analysis.
type Record struct {
	ID             string          `json:"id"`
	FileName       string          `json:"fileName"`
	JobDescription string          `json:"jobDescription"`
	Report         analysis.Report `json:"report"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// SQLiteStore persists analyses in the resume_analyses table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) a SQLite database at path and ensures the
// resume_analyses table exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS resume_analyses (
		id               TEXT PRIMARY KEY,
		file_name        TEXT NOT NULL,
		job_description  TEXT NOT NULL,
		ata_score        INTEGER NOT NULL,
		keyword_score    INTEGER NOT NULL,
		semantic_score   INTEGER NOT NULL,
		formatting_score INTEGER NOT NULL,
		breakdown        TEXT NOT NULL,
		revised_snippet  TEXT NOT NULL,
		created_at       TEXT NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating resume_analyses table: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Save inserts rec, filling in ID and CreatedAt when they are empty.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("record is required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	breakdown, err := json.Marshal(rec.Report.Breakdown)
	if err != nil {
		return fmt.Errorf("encoding breakdown: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO resume_analyses (
		id, file_name, job_description, ata_score, keyword_score, semantic_score,
		formatting_score, breakdown, revised_snippet, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FileName, rec.JobDescription,
		rec.Report.ATAScore, rec.Report.KeywordScore, rec.Report.SemanticScore, rec.Report.FormattingScore,
		string(breakdown), rec.Report.RevisedSnippet, rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving analysis %s: %w", rec.ID, err)
	}

	return nil
}

const selectColumns = `SELECT id, file_name, job_description, ata_score, keyword_score, semantic_score,
	formatting_score, breakdown, revised_snippet, created_at FROM resume_analyses`

// Get returns the analysis with the given id or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading analysis %s: %w", id, err)
	}

	return rec, nil
}

// List returns up to limit analyses, newest first. A non-positive limit returns all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+" ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("listing analyses: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}

	return records, nil
}

// Delete removes the analysis with the given id or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM resume_analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting analysis %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting analysis %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec       Record
		breakdown string
		createdAt string
	)

	err := row.Scan(
		&rec.ID, &rec.FileName, &rec.JobDescription,
		&rec.Report.ATAScore, &rec.Report.KeywordScore, &rec.Report.SemanticScore, &rec.Report.FormattingScore,
		&breakdown, &rec.Report.RevisedSnippet, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(breakdown), &rec.Report.Breakdown); err != nil {
		return nil, fmt.Errorf("decoding breakdown of %s: %w", rec.ID, err)
	}

	rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("decoding created_at of %s: %w", rec.ID, err)
	}

	return &rec, nil
}
