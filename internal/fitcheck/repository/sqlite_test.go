package repository

import (
	"context"
	"path/filepath"
	"testing"

	"placement-service/internal/fitcheck/models"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func sampleResult() models.FitCheckResult {
	return models.FitCheckResult{
		Passed: false,
		Score:  70,
		Issues: []models.Issue{
			{Type: models.IssueOverlap, Severity: models.SeverityError, Message: "chair overlaps with chair", FurnitureIDs: []string{"a", "b"}},
			{Type: models.IssueSafety, Severity: models.SeverityWarning, Message: "bookshelf may have tip-over risk", FurnitureIDs: []string{"c"}},
		},
	}
}

func TestNewReport_CountsSeverities(t *testing.T) {
	rep := NewReport("req-1", "living_room", sampleResult())

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "req-1", rep.RequestID)
	assert.Equal(t, 1, rep.ErrorCount)
	assert.Equal(t, 1, rep.WarningCount)
	assert.False(t, rep.Passed)
	assert.Equal(t, 70, rep.Score)
}

func TestSaveAndGetByID(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	rep := NewReport("req-1", "living_room", sampleResult())

	require.NoError(t, repo.Save(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)

	assert.Equal(t, rep.ID, got.ID)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "living_room", got.RoomType)
	assert.False(t, got.Passed)
	assert.Equal(t, 70, got.Score)
	assert.Equal(t, rep.Issues, got.Issues)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := openRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInit_Idempotent(t *testing.T) {
	repo := openRepo(t)
	require.NoError(t, repo.Init(context.Background()))
}

func TestSave_DuplicateID(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	rep := NewReport("req-1", "", sampleResult())

	require.NoError(t, repo.Save(ctx, rep))
	assert.Error(t, repo.Save(ctx, rep))
}
