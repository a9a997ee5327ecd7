package repository

import (
	"sync"

	likeModel "microblog/internal/domain/like/model"
	"microblog/internal/domain/post/model"
	replyModel "microblog/internal/domain/reply/model"

	"gorm.io/gorm"
)

// PostRepository 接口定义
type PostRepository interface {
	Create(post *model.Post) error
	// GetByID 返回帖子及其聚合维度，viewerID 为空表示匿名访问
	GetByID(id, viewerID string) (*model.Post, error)
	// List 窗口查询，authorID 为空表示全局信息流，非空表示用户时间线
	List(authorID, viewerID string, offset, limit int) ([]model.Post, int64, error)
	UpdateContent(id, content string) error
	// Delete 级联删除帖子、其回复以及两者的点赞
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id, viewerID string) (*model.Post, error) {
	var post model.Post
	err := r.withAggregates(r.db.Model(&model.Post{}), viewerID).
		Preload("Author").
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List 数据窗口和总数两条查询并发执行，任一失败则整个请求失败
// 两条查询不在同一快照内，total 相对窗口可能有短暂偏差（可接受的最终一致）
func (r *postRepository) List(authorID, viewerID string, offset, limit int) ([]model.Post, int64, error) {
	var (
		posts    []model.Post
		total    int64
		dataErr  error
		countErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dataErr = r.withAggregates(r.scoped(authorID), viewerID).
			Preload("Author").
			Order("posts.created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&posts).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.scoped(authorID).Count(&total).Error
	}()
	wg.Wait()

	if dataErr != nil {
		return nil, 0, dataErr
	}
	if countErr != nil {
		return nil, 0, countErr
	}
	return posts, total, nil
}

func (r *postRepository) UpdateContent(id, content string) error {
	return r.db.Model(&model.Post{}).Where("id = ?", id).Update("content", content).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		replyIDs := tx.Model(&replyModel.Reply{}).Select("id").Where("post_id = ?", id)

		// 回复上的点赞
		if err := tx.Where("target_type = ? AND target_id IN (?)", likeModel.TargetReply, replyIDs).
			Delete(&likeModel.Like{}).Error; err != nil {
			return err
		}
		// 帖子上的点赞
		if err := tx.Where("target_type = ? AND target_id = ?", likeModel.TargetPost, id).
			Delete(&likeModel.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&replyModel.Reply{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

// scoped 按作者过滤的基础查询，数据查询和计数查询共用同一谓词
func (r *postRepository) scoped(authorID string) *gorm.DB {
	query := r.db.Model(&model.Post{})
	if authorID != "" {
		query = query.Where("author_id = ?", authorID)
	}
	return query
}

// withAggregates 单次抓取附加三个聚合维度：
// 点赞数、回复数（相关子查询），以及访问者是否点过赞（EXISTS 半连接，
// 只探测存在性，不会因连接产生行展开）。逐条回查的 O(n) 方案被刻意排除。
func (r *postRepository) withAggregates(query *gorm.DB, viewerID string) *gorm.DB {
	selectSQL := `posts.*,
		(SELECT COUNT(*) FROM likes WHERE likes.target_type = 'post' AND likes.target_id = posts.id) AS like_count,
		(SELECT COUNT(*) FROM replies WHERE replies.post_id = posts.id) AS reply_count`

	if viewerID == "" {
		return query.Select(selectSQL + ", FALSE AS liked")
	}
	return query.Select(selectSQL+`,
		EXISTS(SELECT 1 FROM likes WHERE likes.target_type = 'post' AND likes.target_id = posts.id AND likes.user_id = ?) AS liked`,
		viewerID)
}
