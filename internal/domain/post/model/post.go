package model

import (
	"time"

	userModel "microblog/internal/domain/user/model"
	baseModel "microblog/pkg/model"
)

// ContentMaxLength 帖子与回复共享的内容长度上限
const ContentMaxLength = 280

// Post 帖子模型
// LikeCount/ReplyCount/Liked 是读取时计算的聚合列，不落库，
// 避免冗余计数的更新漂移
type Post struct {
	baseModel.BaseModel
	Content  string          `gorm:"type:varchar(280);not null" json:"content"`
	AuthorID string          `gorm:"type:uuid;not null;index" json:"authorId"`
	Author   *userModel.User `gorm:"foreignKey:AuthorID" json:"-"`

	LikeCount  int64 `gorm:"->;-:migration" json:"likeCount"`
	ReplyCount int64 `gorm:"->;-:migration" json:"replyCount"`
	Liked      bool  `gorm:"->;-:migration" json:"liked"`
}

// PostView 对外输出形态，作者信息收敛为公开资料
type PostView struct {
	ID         string                   `json:"id"`
	Content    string                   `json:"content"`
	AuthorID   string                   `json:"authorId"`
	Author     *userModel.PublicProfile `json:"author,omitempty"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
	LikeCount  int64                    `json:"likeCount"`
	ReplyCount int64                    `json:"replyCount"`
	Liked      bool                     `json:"liked"`
}

// View 将原始行映射为对外形态
func (p *Post) View() PostView {
	view := PostView{
		ID:         p.ID,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		LikeCount:  p.LikeCount,
		ReplyCount: p.ReplyCount,
		Liked:      p.Liked,
	}
	if p.Author != nil {
		profile := p.Author.Public()
		view.Author = &profile
	}
	return view
}

// Views 批量映射
func Views(posts []Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].View())
	}
	return views
}
