package service

import (
	"errors"
	"unicode/utf8"

	postModel "microblog/internal/domain/post/model"
	"microblog/internal/domain/reply/model"
	"microblog/internal/domain/reply/repository"
	"microblog/pkg/apperr"
	"microblog/pkg/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReplyService 回复服务接口
type ReplyService interface {
	Create(authorID, postID, content string) (*model.Reply, error)
	Get(id, viewerID string) (*model.Reply, error)
	PostReplies(postID string, p pagination.Params, viewerID string) ([]model.Reply, int64, error)
	Update(id, requesterID, content string) (*model.Reply, error)
	Delete(id, requesterID string) error
}

type replyService struct {
	repo repository.ReplyRepository
	log  *zap.Logger
}

// NewReplyService 创建回复服务
func NewReplyService(repo repository.ReplyRepository, log *zap.Logger) ReplyService {
	return &replyService{repo: repo, log: log}
}

// Create 发表回复，父帖必须存在
func (s *replyService) Create(authorID, postID, content string) (*model.Reply, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	exists, err := s.repo.PostExists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.New(apperr.KindInvalidInput, "post not found")
	}

	reply := &model.Reply{Content: content, PostID: postID, AuthorID: authorID}
	if err := s.repo.Create(reply); err != nil {
		return nil, err
	}

	s.log.Info("reply created",
		zap.String("replyID", reply.ID),
		zap.String("postID", postID),
		zap.String("authorID", authorID),
	)

	return s.Get(reply.ID, authorID)
}

func (s *replyService) Get(id, viewerID string) (*model.Reply, error) {
	reply, err := s.repo.GetByID(id, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "reply not found")
		}
		return nil, err
	}
	return reply, nil
}

// PostReplies 帖子会话，按创建时间正序
func (s *replyService) PostReplies(postID string, p pagination.Params, viewerID string) ([]model.Reply, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByPost(postID, viewerID, p.Offset(), p.Limit)
}

// Update 编辑回复内容，仅限作者本人
func (s *replyService) Update(id, requesterID, content string) (*model.Reply, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := s.guardOwnership(id, requesterID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateContent(id, content); err != nil {
		return nil, err
	}

	s.log.Info("reply updated", zap.String("replyID", id), zap.String("userID", requesterID))
	return s.Get(id, requesterID)
}

// Delete 删除回复，仅限作者本人
func (s *replyService) Delete(id, requesterID string) error {
	if err := s.guardOwnership(id, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.log.Info("reply deleted", zap.String("replyID", id), zap.String("userID", requesterID))
	return nil
}

func (s *replyService) guardOwnership(id, requesterID string) error {
	reply, err := s.Get(id, "")
	if err != nil {
		return err
	}
	if reply.AuthorID != requesterID {
		return apperr.New(apperr.KindForbidden, "you do not own this reply")
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return apperr.New(apperr.KindInvalidInput, "reply content cannot be empty")
	}
	if utf8.RuneCountInString(content) > postModel.ContentMaxLength {
		return apperr.Newf(apperr.KindInvalidInput, "reply content cannot exceed %d characters", postModel.ContentMaxLength)
	}
	return nil
}
