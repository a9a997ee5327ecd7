package handler

import (
	"microblog/internal/domain/like/model"
	"microblog/internal/domain/like/service"
	"microblog/internal/pkg/middleware"
	"microblog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	service service.LikeService
	log     *zap.Logger
}

func NewLikeHandler(s service.LikeService, log *zap.Logger) *LikeHandler {
	return &LikeHandler{service: s, log: log}
}

// LikePost 点赞帖子
// @Summary 点赞帖子（幂等）
// @Tags Like
// @Param id path string true "帖子ID"
// @Success 201 {object} response.Response
// @Router /likes/posts/{id} [post]
func (h *LikeHandler) LikePost(c *gin.Context) {
	h.like(c, model.PostTarget(c.Param("id")))
}

// UnlikePost 取消点赞帖子
// @Summary 取消点赞帖子（幂等）
// @Tags Like
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Router /likes/posts/{id} [delete]
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	h.unlike(c, model.PostTarget(c.Param("id")))
}

// LikeReply 点赞回复
// @Summary 点赞回复（幂等）
// @Tags Like
// @Param id path string true "回复ID"
// @Success 201 {object} response.Response
// @Router /likes/replies/{id} [post]
func (h *LikeHandler) LikeReply(c *gin.Context) {
	h.like(c, model.ReplyTarget(c.Param("id")))
}

// UnlikeReply 取消点赞回复
// @Summary 取消点赞回复（幂等）
// @Tags Like
// @Param id path string true "回复ID"
// @Success 200 {object} response.Response
// @Router /likes/replies/{id} [delete]
func (h *LikeHandler) UnlikeReply(c *gin.Context) {
	h.unlike(c, model.ReplyTarget(c.Param("id")))
}

func (h *LikeHandler) like(c *gin.Context, target model.Target) {
	if err := h.service.Like(middleware.CurrentUserID(c), target); err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Created(c, gin.H{"message": "liked"})
}

func (h *LikeHandler) unlike(c *gin.Context, target model.Target) {
	if err := h.service.Unlike(middleware.CurrentUserID(c), target); err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, gin.H{"message": "unliked"})
}
