package repository

import (
	"sync"

	likeModel "microblog/internal/domain/like/model"
	postModel "microblog/internal/domain/post/model"
	"microblog/internal/domain/reply/model"

	"gorm.io/gorm"
)

// ReplyRepository 接口定义
type ReplyRepository interface {
	Create(reply *model.Reply) error
	GetByID(id, viewerID string) (*model.Reply, error)
	// ListByPost 会话窗口查询，按创建时间正序（会话顺序）
	ListByPost(postID, viewerID string, offset, limit int) ([]model.Reply, int64, error)
	UpdateContent(id, content string) error
	// Delete 删除回复并清理其点赞
	Delete(id string) error
	PostExists(postID string) (bool, error)
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *model.Reply) error {
	return r.db.Create(reply).Error
}

func (r *replyRepository) GetByID(id, viewerID string) (*model.Reply, error) {
	var reply model.Reply
	err := r.withAggregates(r.db.Model(&model.Reply{}), viewerID).
		Preload("Author").
		Where("replies.id = ?", id).
		First(&reply).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListByPost 数据窗口和总数并发执行，任一失败则整个请求失败
func (r *replyRepository) ListByPost(postID, viewerID string, offset, limit int) ([]model.Reply, int64, error) {
	var (
		replies  []model.Reply
		total    int64
		dataErr  error
		countErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dataErr = r.withAggregates(r.scoped(postID), viewerID).
			Preload("Author").
			Order("replies.created_at ASC").
			Offset(offset).
			Limit(limit).
			Find(&replies).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.scoped(postID).Count(&total).Error
	}()
	wg.Wait()

	if dataErr != nil {
		return nil, 0, dataErr
	}
	if countErr != nil {
		return nil, 0, countErr
	}
	return replies, total, nil
}

func (r *replyRepository) UpdateContent(id, content string) error {
	return r.db.Model(&model.Reply{}).Where("id = ?", id).Update("content", content).Error
}

func (r *replyRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", likeModel.TargetReply, id).
			Delete(&likeModel.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Reply{}).Error
	})
}

// PostExists 回复创建前的父帖存在性检查
func (r *replyRepository) PostExists(postID string) (bool, error) {
	var count int64
	err := r.db.Model(&postModel.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

func (r *replyRepository) scoped(postID string) *gorm.DB {
	return r.db.Model(&model.Reply{}).Where("post_id = ?", postID)
}

// withAggregates 附加点赞数和访问者 liked 标记（EXISTS 半连接）
func (r *replyRepository) withAggregates(query *gorm.DB, viewerID string) *gorm.DB {
	selectSQL := `replies.*,
		(SELECT COUNT(*) FROM likes WHERE likes.target_type = 'reply' AND likes.target_id = replies.id) AS like_count`

	if viewerID == "" {
		return query.Select(selectSQL + ", FALSE AS liked")
	}
	return query.Select(selectSQL+`,
		EXISTS(SELECT 1 FROM likes WHERE likes.target_type = 'reply' AND likes.target_id = replies.id AND likes.user_id = ?) AS liked`,
		viewerID)
}
