package repository

import (
	"fmt"

	"microblog/internal/domain/like/model"
	postModel "microblog/internal/domain/post/model"
	replyModel "microblog/internal/domain/reply/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository 接口定义
type LikeRepository interface {
	// Create 条件写入，已存在时静默跳过，返回是否实际插入
	Create(like *model.Like) (bool, error)
	// Delete 无条件删除，目标不存在时同样成功
	Delete(userID string, target model.Target) error
	TargetExists(target model.Target) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create 依赖 (user_id, target_type, target_id) 唯一索引，
// 用 ON CONFLICT DO NOTHING 原子处理并发重复点赞，取代读后写
func (r *likeRepository) Create(like *model.Like) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) Delete(userID string, target model.Target) error {
	return r.db.
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target.Type, target.ID).
		Delete(&model.Like{}).Error
}

// TargetExists 点赞前的目标存在性检查
func (r *likeRepository) TargetExists(target model.Target) (bool, error) {
	var count int64
	var err error

	switch target.Type {
	case model.TargetPost:
		err = r.db.Model(&postModel.Post{}).Where("id = ?", target.ID).Count(&count).Error
	case model.TargetReply:
		err = r.db.Model(&replyModel.Reply{}).Where("id = ?", target.ID).Count(&count).Error
	default:
		return false, fmt.Errorf("unknown like target type: %s", target.Type)
	}

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
