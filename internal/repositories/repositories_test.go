package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var noteColumns = []string{"id", "user_id", "title", "content", "tags", "is_favorite", "deleted_at", "created_at", "updated_at"}

func TestNoteRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE user_id = \$1 AND deleted_at IS NULL ORDER BY updated_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(2, 7, "second", "body", []byte(`[{"name":"go","color":"#00add8"}]`), true, nil, now, now).
			AddRow(1, 7, "first", "body", []byte(`[]`), false, nil, now, now))

	notes, err := repo.List(context.Background(), 7, models.NoteActive)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].ID)
	assert.Equal(t, models.Tag{Name: "go", Color: "#00add8"}, notes[0].Tags[0])
	assert.Equal(t, models.NoteActive, notes[0].Status())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListDeletedOrdersByDeletion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE user_id = \$1 AND deleted_at IS NOT NULL ORDER BY deleted_at DESC`).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(3, 7, "gone", "body", []byte(`[]`), false, now, now, now))

	notes, err := repo.List(context.Background(), 7, models.NoteDeleted)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NoteDeleted, notes[0].Status())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_FindOwnedNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE .*id = \$1 AND user_id = \$2.* AND deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows(noteColumns))

	_, err := repo.FindOwned(context.Background(), 7, 99, models.NoteActive)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_SaveMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(`UPDATE "notes" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &models.Note{ID: 5, UserID: 7, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PurgeOnlyDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(`DELETE FROM "notes" WHERE id = \$1 AND user_id = \$2 AND deleted_at IS NOT NULL`).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "notes"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Purge(context.Background(), 7, 5))
	assert.ErrorIs(t, repo.Purge(context.Background(), 7, 5), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_RestoreMany(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "notes" WHERE user_id = \$1 AND id IN \(\$2,\$3,\$4\) AND deleted_at IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))
	mock.ExpectExec(`UPDATE "notes" SET "deleted_at"=\$1,"updated_at"=\$2 WHERE user_id = \$3 AND id IN \(\$4,\$5\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	ids, err := repo.RestoreMany(context.Background(), 7, []int64{1, 2, 3}, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PurgeManyRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec(`DELETE FROM "notes"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.PurgeMany(context.Background(), 7, []int64{4})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PurgeManyNothingDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "notes"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	ids, err := repo.PurgeMany(context.Background(), 7, []int64{4, 5})
	require.NoError(t, err)
	assert.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PurgeDeletedBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM "notes" WHERE deleted_at IS NOT NULL AND deleted_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PurgeDeletedBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_ListOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery(`ORDER BY completed ASC, due_date ASC NULLS LAST, CASE priority`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "priority", "completed"}).
			AddRow(1, 7, "a", "high", false))

	todos, err := repo.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, models.PriorityHigh, todos[0].Priority)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectExec(`DELETE FROM "todos" WHERE id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 7, 1), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name"}).AddRow(3, "alice@example.com", "Alice"))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "Alice", user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Summaries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT action, COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total_amount FROM "blockchain_transactions" WHERE user_id = \$1 GROUP BY "?action"? ORDER BY action`).
		WillReturnRows(sqlmock.NewRows([]string{"action", "count", "total_amount"}).
			AddRow("create", 2, "1.5").
			AddRow("update", 1, "0.25"))

	sums, err := repo.Summaries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, "create", sums[0].Action)
	assert.Equal(t, int64(2), sums[0].Count)
	assert.True(t, decimal.RequireFromString("1.5").Equal(sums[0].TotalAmount))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
}

func TestMigrate_UsesEmbeddedMigrations(t *testing.T) {
	db, _ := newMockDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, sqlDB *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Migrate(context.Background(), db))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(ctx context.Context, sqlDB *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("bad migration")
	}
	err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad migration")
}
