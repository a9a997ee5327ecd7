package service

import (
	"microblog/internal/domain/like/model"
	"microblog/internal/domain/like/repository"
	"microblog/pkg/apperr"

	"go.uber.org/zap"
)

// LikeService 点赞服务接口
// 对同一 (用户, 目标) 而言 like/unlike 是幂等开关：
// 重复点赞和取消不存在的点赞都静默成功
type LikeService interface {
	Like(userID string, target model.Target) error
	Unlike(userID string, target model.Target) error
}

type likeService struct {
	repo repository.LikeRepository
	log  *zap.Logger
}

// NewLikeService 创建点赞服务
func NewLikeService(repo repository.LikeRepository, log *zap.Logger) LikeService {
	return &likeService{repo: repo, log: log}
}

// Like 点赞，目标必须存在
func (s *likeService) Like(userID string, target model.Target) error {
	exists, err := s.repo.TargetExists(target)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Newf(apperr.KindNotFound, "%s not found", target.Type)
	}

	inserted, err := s.repo.Create(model.NewLike(userID, target))
	if err != nil {
		return err
	}

	if !inserted {
		// 已点过赞，幂等跳过
		s.log.Debug("like already exists",
			zap.String("userID", userID),
			zap.String("targetType", string(target.Type)),
			zap.String("targetID", target.ID),
		)
		return nil
	}

	s.log.Info("target liked",
		zap.String("userID", userID),
		zap.String("targetType", string(target.Type)),
		zap.String("targetID", target.ID),
	)
	return nil
}

// Unlike 取消点赞，无论此前是否点过都成功
func (s *likeService) Unlike(userID string, target model.Target) error {
	if err := s.repo.Delete(userID, target); err != nil {
		return err
	}

	s.log.Info("target unliked",
		zap.String("userID", userID),
		zap.String("targetType", string(target.Type)),
		zap.String("targetID", target.ID),
	)
	return nil
}
