package model

import (
	"time"

	baseModel "microblog/pkg/model"
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Email       string `gorm:"unique;not null" json:"email"`
	Username    string `gorm:"unique;not null" json:"username"`
	DisplayName string `json:"displayName"`
	Bio         string `gorm:"type:varchar(160)" json:"bio"`
	Avatar      string `json:"avatar"`
	Password    string `json:"-"` // 密码哈希不返回给前端
}

// PublicProfile 公开资料视图
// 嵌入帖子/回复的作者信息一律使用该视图，不暴露 email
type PublicProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Public 转换为公开资料视图
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
