package service

import (
	"errors"
	"unicode/utf8"

	"microblog/internal/domain/post/model"
	"microblog/internal/domain/post/repository"
	"microblog/pkg/apperr"
	"microblog/pkg/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostService 帖子服务接口
type PostService interface {
	Create(authorID, content string) (*model.Post, error)
	Get(id, viewerID string) (*model.Post, error)
	Feed(p pagination.Params, viewerID string) ([]model.Post, int64, error)
	UserPosts(authorID string, p pagination.Params, viewerID string) ([]model.Post, int64, error)
	Update(id, requesterID, content string) (*model.Post, error)
	Delete(id, requesterID string) error
}

type postService struct {
	repo repository.PostRepository
	log  *zap.Logger
}

// NewPostService 创建帖子服务
func NewPostService(repo repository.PostRepository, log *zap.Logger) PostService {
	return &postService{repo: repo, log: log}
}

// Create 发布帖子，返回带作者和聚合维度的完整行
func (s *postService) Create(authorID, content string) (*model.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post := &model.Post{Content: content, AuthorID: authorID}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	s.log.Info("post created", zap.String("postID", post.ID), zap.String("authorID", authorID))

	// 回读以附带作者资料，新帖的计数必然为零
	return s.Get(post.ID, authorID)
}

func (s *postService) Get(id, viewerID string) (*model.Post, error) {
	post, err := s.repo.GetByID(id, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "post not found")
		}
		return nil, err
	}
	return post, nil
}

// Feed 全局信息流，按创建时间倒序
func (s *postService) Feed(p pagination.Params, viewerID string) ([]model.Post, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List("", viewerID, p.Offset(), p.Limit)
}

// UserPosts 用户时间线，按创建时间倒序
func (s *postService) UserPosts(authorID string, p pagination.Params, viewerID string) ([]model.Post, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(authorID, viewerID, p.Offset(), p.Limit)
}

// Update 编辑帖子内容，仅限作者本人
func (s *postService) Update(id, requesterID, content string) (*model.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := s.guardOwnership(id, requesterID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateContent(id, content); err != nil {
		return nil, err
	}

	s.log.Info("post updated", zap.String("postID", id), zap.String("userID", requesterID))
	return s.Get(id, requesterID)
}

// Delete 删除帖子，仅限作者本人，级联清理回复与点赞
func (s *postService) Delete(id, requesterID string) error {
	if err := s.guardOwnership(id, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.log.Info("post deleted", zap.String("postID", id), zap.String("userID", requesterID))
	return nil
}

// guardOwnership 存在性 + 所有权校验，变更操作前置守卫
func (s *postService) guardOwnership(id, requesterID string) error {
	post, err := s.Get(id, "")
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return apperr.New(apperr.KindForbidden, "you do not own this post")
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return apperr.New(apperr.KindInvalidInput, "post content cannot be empty")
	}
	if utf8.RuneCountInString(content) > model.ContentMaxLength {
		return apperr.Newf(apperr.KindInvalidInput, "post content cannot exceed %d characters", model.ContentMaxLength)
	}
	return nil
}
