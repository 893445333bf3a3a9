package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medinabot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(db, "postgres"), mock
}

func TestActivityRepo_Append(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewActivityRepo(db)
	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(int64(123), "what is zakat?", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), domain.ActivityEntry{UserID: 123, Action: "what is zakat?", At: at})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_Append_Error(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewActivityRepo(db)

	mock.ExpectExec("INSERT INTO activity_log").
		WillReturnError(fmt.Errorf("connection reset"))

	err := repo.Append(context.Background(), domain.ActivityEntry{UserID: 1, Action: "x", At: time.Now()})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_CleanOldEntries(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewActivityRepo(db)

	mock.ExpectExec("DELETE FROM activity_log").
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 12))

	err := repo.CleanOldEntries(context.Background(), 30)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_Append_CancelledContext(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	repo := NewActivityRepo(db)

	mock.ExpectExec("INSERT INTO activity_log").
		WillDelayFor(time.Second).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := repo.Append(ctx, domain.ActivityEntry{UserID: 1, Action: "x", At: time.Now()})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
