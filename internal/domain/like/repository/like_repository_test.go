package repository

import (
	"testing"

	"microblog/internal/domain/like/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestCreateConditional(t *testing.T) {
	t.Run("First like inserts a row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "likes" .+ON CONFLICT DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.Create(model.NewLike("user-1", model.PostTarget("post-1")))

		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate like is skipped by the unique index", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "likes" .+ON CONFLICT DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		inserted, err := repo.Create(model.NewLike("user-1", model.PostTarget("post-1")))

		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteLike(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE user_id = .+ AND target_type = .+ AND target_id =`).
		WithArgs("user-1", "reply", "reply-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete("user-1", model.ReplyTarget("reply-1"))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTargetExists(t *testing.T) {
	t.Run("Post target checks posts table", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE id =`).
			WithArgs("post-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.TargetExists(model.PostTarget("post-1"))

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Reply target checks replies table", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "replies" WHERE id =`).
			WithArgs("reply-9").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.TargetExists(model.ReplyTarget("reply-9"))

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
