package repository

import (
	"testing"
	"time"

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

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "content", "author_id",
		"like_count", "reply_count", "liked",
	})
}

func TestGetByIDAggregates(t *testing.T) {
	t.Run("Anonymous viewer gets liked=false", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(db)
		now := time.Now()

		mock.ExpectQuery(`SELECT posts\.\*,.+AS like_count,.+AS reply_count, FALSE AS liked FROM "posts"`).
			WillReturnRows(postRows().AddRow("post-1", now, now, "hello", "user-1", 3, 1, false))
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).
				AddRow("user-1", "alice", "Alice"))

		post, err := repo.GetByID("post-1", "")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), post.LikeCount)
		assert.Equal(t, int64(1), post.ReplyCount)
		assert.False(t, post.Liked)
		assert.Equal(t, "alice", post.Author.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Viewer like state via EXISTS", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(db)
		now := time.Now()

		mock.ExpectQuery(`SELECT posts\.\*,.+EXISTS\(SELECT 1 FROM likes.+\) AS liked FROM "posts"`).
			WillReturnRows(postRows().AddRow("post-1", now, now, "hello", "user-1", 3, 1, true))
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow("user-1", "alice"))

		post, err := repo.GetByID("post-1", "viewer-1")

		assert.NoError(t, err)
		assert.True(t, post.Liked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing post returns gorm.ErrRecordNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(`SELECT posts\.\*,`).
			WillReturnRows(postRows())

		_, err := repo.GetByID("missing", "")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestListWindow(t *testing.T) {
	t.Run("Data and count both returned", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(db)
		now := time.Now()

		// 数据和计数两条查询并发发出，顺序不定
		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery(`SELECT posts\.\*,.+FROM "posts" ORDER BY posts\.created_at DESC`).
			WillReturnRows(postRows().
				AddRow("post-2", now, now, "second", "user-1", 0, 0, false).
				AddRow("post-1", now.Add(-time.Minute), now, "first", "user-1", 2, 1, false))
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow("user-1", "alice"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

		posts, total, err := repo.List("", "", 0, 20)

		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, int64(41), total)
		assert.Equal(t, "second", posts[0].Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Author scope applies to data and count", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(db)

		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery(`SELECT posts\.\*,.+FROM "posts" WHERE author_id = .+ ORDER BY posts\.created_at DESC`).
			WillReturnRows(postRows())
		mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE author_id =`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		posts, total, err := repo.List("user-9", "", 0, 20)

		assert.NoError(t, err)
		assert.Empty(t, posts)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateContent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET "content"=.+,"updated_at"=.+ WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateContent("post-1", "edited")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostRepository(db)

	// 事务内依次清理：回复点赞 → 帖子点赞 → 回复 → 帖子
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE target_type = .+ AND target_id IN \(SELECT id FROM "replies" WHERE post_id = .+\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "likes" WHERE target_type = .+ AND target_id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "replies" WHERE post_id =`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "posts" WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete("post-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
