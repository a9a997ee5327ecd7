package model

import (
	"time"

	userModel "microblog/internal/domain/user/model"
	baseModel "microblog/pkg/model"
)

// Reply 回复模型
// LikeCount/Liked 为读取时计算的聚合列，不落库
type Reply struct {
	baseModel.BaseModel
	Content  string          `gorm:"type:varchar(280);not null" json:"content"`
	PostID   string          `gorm:"type:uuid;not null;index" json:"postId"`
	AuthorID string          `gorm:"type:uuid;not null;index" json:"authorId"`
	Author   *userModel.User `gorm:"foreignKey:AuthorID" json:"-"`

	LikeCount int64 `gorm:"->;-:migration" json:"likeCount"`
	Liked     bool  `gorm:"->;-:migration" json:"liked"`
}

// ReplyView 对外输出形态
type ReplyView struct {
	ID        string                   `json:"id"`
	Content   string                   `json:"content"`
	PostID    string                   `json:"postId"`
	AuthorID  string                   `json:"authorId"`
	Author    *userModel.PublicProfile `json:"author,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	LikeCount int64                    `json:"likeCount"`
	Liked     bool                     `json:"liked"`
}

// View 将原始行映射为对外形态
func (r *Reply) View() ReplyView {
	view := ReplyView{
		ID:        r.ID,
		Content:   r.Content,
		PostID:    r.PostID,
		AuthorID:  r.AuthorID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		LikeCount: r.LikeCount,
		Liked:     r.Liked,
	}
	if r.Author != nil {
		profile := r.Author.Public()
		view.Author = &profile
	}
	return view
}

// Views 批量映射
func Views(replies []Reply) []ReplyView {
	views := make([]ReplyView, 0, len(replies))
	for i := range replies {
		views = append(views, replies[i].View())
	}
	return views
}
