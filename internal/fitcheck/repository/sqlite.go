package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"placement-service/internal/fitcheck/models"

	"github.com/google/uuid"
)

// ============================================================
// SQLite Report Log
// ============================================================

//go:embed migrations/001_init_reports.sql
var initReports string

// ErrNotFound is returned when no report has the requested id.
var ErrNotFound = errors.New("report not found")

// Report is the stored summary of one evaluated fit-check request.
type Report struct {
	ID           string         `json:"id"`
	RequestID    string         `json:"request_id"`
	RoomType     string         `json:"room_type,omitempty"`
	Passed       bool           `json:"passed"`
	Score        int            `json:"score"`
	ErrorCount   int            `json:"error_count"`
	WarningCount int            `json:"warning_count"`
	Issues       []models.Issue `json:"issues"`
	CreatedAt    string         `json:"created_at"`
}

// NewReport summarises a result under a fresh report id.
func NewReport(requestID, roomType string, result models.FitCheckResult) Report {
	r := Report{
		ID:        uuid.NewString(),
		RequestID: requestID,
		RoomType:  roomType,
		Passed:    result.Passed,
		Score:     result.Score,
		Issues:    result.Issues,
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case models.SeverityError:
			r.ErrorCount++
		case models.SeverityWarning:
			r.WarningCount++
		}
	}
	return r
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init applies the schema.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, initReports); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, report Report) error {
	issues, err := json.Marshal(report.Issues)
	if err != nil {
		return fmt.Errorf("encode issues: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO fit_reports (id, request_id, room_type, passed, score, error_count, warning_count, issues)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		report.ID,
		report.RequestID,
		report.RoomType,
		report.Passed,
		report.Score,
		report.ErrorCount,
		report.WarningCount,
		string(issues),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, request_id, room_type, passed, score, error_count, warning_count, issues, created_at
        FROM fit_reports
        WHERE id = ?
    `, id)

	var rep Report
	var issues string
	if err := row.Scan(&rep.ID, &rep.RequestID, &rep.RoomType, &rep.Passed, &rep.Score,
		&rep.ErrorCount, &rep.WarningCount, &issues, &rep.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(issues), &rep.Issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return &rep, nil
}

// OpenSQLite opens (creating if needed) the sqlite database at dbPath.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
