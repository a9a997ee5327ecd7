package handler

import (
	"net/http"

	"microblog/internal/domain/reply/model"
	"microblog/internal/domain/reply/service"
	"microblog/internal/pkg/middleware"
	"microblog/pkg/pagination"
	"microblog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReplyHandler struct {
	service service.ReplyService
	log     *zap.Logger
}

func NewReplyHandler(s service.ReplyService, log *zap.Logger) *ReplyHandler {
	return &ReplyHandler{service: s, log: log}
}

// CreateReplyInput 发表回复输入
type CreateReplyInput struct {
	Content string `json:"content" binding:"required"`
	PostID  string `json:"postId" binding:"required"`
}

// UpdateReplyInput 编辑回复输入
type UpdateReplyInput struct {
	Content string `json:"content" binding:"required"`
}

// CreateReply 发表回复
// @Summary 发表回复
// @Tags Reply
// @Accept json
// @Produce json
// @Param input body CreateReplyInput true "回复内容"
// @Success 201 {object} response.Response{data=model.ReplyView}
// @Router /replies [post]
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	var input CreateReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content and postId are required")
		return
	}

	reply, err := h.service.Create(middleware.CurrentUserID(c), input.PostID, input.Content)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Created(c, reply.View())
}

// GetPostReplies 获取帖子会话
// @Summary 获取帖子的回复（会话正序）
// @Tags Reply
// @Param postId path string true "帖子ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response{data=pagination.Page}
// @Router /replies/post/{postId} [get]
func (h *ReplyHandler) GetPostReplies(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	p.Normalize()

	replies, total, err := h.service.PostReplies(c.Param("postId"), p, middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, pagination.NewPage(model.Views(replies), total, p))
}

// GetReply 获取单条回复
// @Summary 获取回复详情
// @Tags Reply
// @Param id path string true "回复ID"
// @Success 200 {object} response.Response{data=model.ReplyView}
// @Router /replies/{id} [get]
func (h *ReplyHandler) GetReply(c *gin.Context) {
	reply, err := h.service.Get(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, reply.View())
}

// UpdateReply 编辑回复
// @Summary 编辑回复（仅作者）
// @Tags Reply
// @Accept json
// @Produce json
// @Param id path string true "回复ID"
// @Param input body UpdateReplyInput true "回复内容"
// @Success 200 {object} response.Response{data=model.ReplyView}
// @Router /replies/{id} [patch]
func (h *ReplyHandler) UpdateReply(c *gin.Context) {
	var input UpdateReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	reply, err := h.service.Update(c.Param("id"), middleware.CurrentUserID(c), input.Content)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, reply.View())
}

// DeleteReply 删除回复
// @Summary 删除回复（仅作者）
// @Tags Reply
// @Param id path string true "回复ID"
// @Success 200 {object} response.Response
// @Router /replies/{id} [delete]
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	if err := h.service.Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, gin.H{"message": "reply deleted"})
}
