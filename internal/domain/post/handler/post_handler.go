package handler

import (
	"net/http"

	"microblog/internal/domain/post/model"
	"microblog/internal/domain/post/service"
	"microblog/internal/pkg/middleware"
	"microblog/pkg/pagination"
	"microblog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostHandler struct {
	service service.PostService
	log     *zap.Logger
}

func NewPostHandler(s service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{service: s, log: log}
}

// PostInput 发帖/编辑输入
type PostInput struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost 发布帖子
// @Summary 发布帖子
// @Tags Post
// @Accept json
// @Produce json
// @Param input body PostInput true "帖子内容"
// @Success 201 {object} response.Response{data=model.PostView}
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	post, err := h.service.Create(middleware.CurrentUserID(c), input.Content)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Created(c, post.View())
}

// GetFeed 获取全局信息流
// @Summary 获取信息流（新帖在前）
// @Tags Post
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response{data=pagination.Page}
// @Router /posts/feed [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	p, ok := h.bindPagination(c)
	if !ok {
		return
	}

	posts, total, err := h.service.Feed(p, middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, pagination.NewPage(model.Views(posts), total, p))
}

// GetUserPosts 获取用户时间线
// @Summary 获取指定用户的帖子
// @Tags Post
// @Param userId path string true "用户ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response{data=pagination.Page}
// @Router /posts/user/{userId} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	p, ok := h.bindPagination(c)
	if !ok {
		return
	}

	posts, total, err := h.service.UserPosts(c.Param("userId"), p, middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, pagination.NewPage(model.Views(posts), total, p))
}

// GetPost 获取单个帖子
// @Summary 获取帖子详情
// @Tags Post
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response{data=model.PostView}
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.service.Get(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, post.View())
}

// UpdatePost 编辑帖子
// @Summary 编辑帖子（仅作者）
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param input body PostInput true "帖子内容"
// @Success 200 {object} response.Response{data=model.PostView}
// @Router /posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	post, err := h.service.Update(c.Param("id"), middleware.CurrentUserID(c), input.Content)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, post.View())
}

// DeletePost 删除帖子
// @Summary 删除帖子（仅作者）
// @Tags Post
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.service.Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, gin.H{"message": "post deleted"})
}

func (h *PostHandler) bindPagination(c *gin.Context) (pagination.Params, bool) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid pagination parameters")
		return p, false
	}
	p.Normalize()
	return p, true
}
