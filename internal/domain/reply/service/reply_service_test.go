package service

import (
	"net/http"
	"testing"

	"microblog/internal/domain/reply/model"
	"microblog/pkg/apperr"
	"microblog/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockReplyRepository is a mock of ReplyRepository
type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) Create(reply *model.Reply) error {
	args := m.Called(reply)
	return args.Error(0)
}

func (m *MockReplyRepository) GetByID(id, viewerID string) (*model.Reply, error) {
	args := m.Called(id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reply), args.Error(1)
}

func (m *MockReplyRepository) ListByPost(postID, viewerID string, offset, limit int) ([]model.Reply, int64, error) {
	args := m.Called(postID, viewerID, offset, limit)
	return args.Get(0).([]model.Reply), args.Get(1).(int64), args.Error(2)
}

func (m *MockReplyRepository) UpdateContent(id, content string) error {
	args := m.Called(id, content)
	return args.Error(0)
}

func (m *MockReplyRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReplyRepository) PostExists(postID string) (bool, error) {
	args := m.Called(postID)
	return args.Bool(0), args.Error(1)
}

func createTestReply(id, postID, authorID, content string) *model.Reply {
	r := &model.Reply{Content: content, PostID: postID, AuthorID: authorID}
	r.ID = id
	return r
}

func TestCreateReply(t *testing.T) {
	t.Run("Create success", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		reply := createTestReply("reply-1", "post-1", "user-1", "nice")
		mockRepo.On("PostExists", "post-1").Return(true, nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Reply")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*model.Reply).ID = "reply-1"
		})
		mockRepo.On("GetByID", "reply-1", "user-1").Return(reply, nil)

		result, err := service.Create("user-1", "post-1", "nice")

		assert.NoError(t, err)
		assert.Equal(t, "reply-1", result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing post rejected as bad input", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		mockRepo.On("PostExists", "missing").Return(false, nil)

		result, err := service.Create("user-1", "missing", "nice")

		assert.Nil(t, result)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		assert.Equal(t, http.StatusBadRequest, apperr.KindOf(err).HTTPStatus())
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Empty content rejected", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		result, err := service.Create("user-1", "post-1", "")

		assert.Nil(t, result)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "PostExists")
	})
}

func TestPostReplies(t *testing.T) {
	t.Run("Conversation order window", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		replies := []model.Reply{*createTestReply("reply-1", "post-1", "user-1", "first")}
		mockRepo.On("ListByPost", "post-1", "", 0, 10).Return(replies, int64(1), nil)

		result, total, err := service.PostReplies("post-1", pagination.Params{Page: 1, Limit: 10}, "")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Limit over maximum rejected", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		_, _, err := service.PostReplies("post-1", pagination.Params{Page: 1, Limit: 101}, "")

		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "ListByPost")
	})
}

func TestUpdateReply(t *testing.T) {
	t.Run("Non-owner forbidden", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		reply := createTestReply("reply-1", "post-1", "user-1", "old")
		mockRepo.On("GetByID", "reply-1", "").Return(reply, nil)

		result, err := service.Update("reply-1", "user-2", "new")

		assert.Nil(t, result)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "UpdateContent")
	})
}

func TestDeleteReply(t *testing.T) {
	t.Run("Owner can delete", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		reply := createTestReply("reply-1", "post-1", "user-1", "bye")
		mockRepo.On("GetByID", "reply-1", "").Return(reply, nil)
		mockRepo.On("Delete", "reply-1").Return(nil)

		err := service.Delete("reply-1", "user-1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing reply not found", func(t *testing.T) {
		mockRepo := new(MockReplyRepository)
		service := NewReplyService(mockRepo, zap.NewNop())

		mockRepo.On("GetByID", "missing", "").Return(nil, gorm.ErrRecordNotFound)

		err := service.Delete("missing", "user-1")

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
