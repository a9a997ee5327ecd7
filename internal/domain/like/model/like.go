package model

import (
	baseModel "microblog/pkg/model"
)

// TargetType 点赞目标类型
type TargetType string

const (
	TargetPost  TargetType = "post"
	TargetReply TargetType = "reply"
)

// Target 点赞目标，post 和 reply 二选一
// 只通过 PostTarget/ReplyTarget 构造，类型层面排除两空或两设的状态
type Target struct {
	Type TargetType
	ID   string
}

// PostTarget 帖子目标
func PostTarget(postID string) Target {
	return Target{Type: TargetPost, ID: postID}
}

// ReplyTarget 回复目标
func ReplyTarget(replyID string) Target {
	return Target{Type: TargetReply, ID: replyID}
}

// Like 点赞模型
// (user_id, target_type, target_id) 唯一索引保证同一目标最多一条点赞，
// 并发重复写入由存储层拒绝而不是读后写
type Like struct {
	baseModel.BaseModel
	UserID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_target" json:"userId"`
	TargetType TargetType `gorm:"type:varchar(10);not null;uniqueIndex:idx_like_user_target" json:"targetType"`
	TargetID   string     `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_target;index" json:"targetId"`
}

// NewLike 基于目标构造点赞记录
func NewLike(userID string, target Target) *Like {
	return &Like{
		UserID:     userID,
		TargetType: target.Type,
		TargetID:   target.ID,
	}
}
