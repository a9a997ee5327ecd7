package handler

import (
	"net/http"

	"microblog/internal/domain/user/model"
	"microblog/internal/domain/user/service"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/uploader"
	"microblog/internal/pkg/worker"
	"microblog/pkg/pagination"
	"microblog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service  service.UserService
	uploader uploader.Uploader
	cleanup  *worker.Pool
	log      *zap.Logger
}

func NewUserHandler(s service.UserService, up uploader.Uploader, cleanup *worker.Pool, log *zap.Logger) *UserHandler {
	return &UserHandler{service: s, uploader: up, cleanup: cleanup, log: log}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// LoginInput 登录输入
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput 资料更新输入
type UpdateProfileInput struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "注册信息"
// @Success 201 {object} response.Response{data=AuthResponse}
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.service.Register(service.RegisterInput{
		Email:       input.Email,
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Password:    input.Password,
	})
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Created(c, AuthResponse{Token: token, User: user})
}

// Login 用户登录
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "登录信息"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, AuthResponse{Token: token, User: user})
}

// Me 获取当前用户
// @Summary 获取当前登录用户（含 email）
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=model.User}
// @Router /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, user)
}

// GetProfile 获取公开资料
// @Summary 根据用户名获取公开资料
// @Tags User
// @Param username path string true "用户名"
// @Success 200 {object} response.Response{data=model.PublicProfile}
// @Router /users/{username} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.GetByUsername(c.Param("username"))
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, user.Public())
}

// ListUsers 用户目录
// @Summary 获取用户列表（公开资料）
// @Tags User
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response{data=pagination.Page}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	p.Normalize()

	users, total, err := h.service.GetUsers(p)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}

	profiles := make([]model.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	response.Success(c, pagination.NewPage(profiles, total, p))
}

// UpdateProfile 更新自己的资料
// @Summary 更新当前用户资料
// @Tags User
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "资料"
// @Success 200 {object} response.Response{data=model.User}
// @Router /users/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(middleware.CurrentUserID(c), service.ProfileUpdate{
		DisplayName: input.DisplayName,
		Bio:         input.Bio,
	})
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}
	response.Success(c, user)
}

// UploadAvatar 上传头像
// @Summary 上传头像到对象存储
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar"
// @Success 200 {object} response.Response{data=model.User}
// @Router /users/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		response.Error(c, http.StatusInternalServerError, "uploader not configured")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "avatar file is required")
		return
	}

	url, err := h.uploader.Upload(file)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}

	user, oldAvatar, err := h.service.UpdateAvatar(middleware.CurrentUserID(c), url)
	if err != nil {
		response.HandleError(c, h.log, err)
		return
	}

	// 旧头像异步清理
	if oldAvatar != "" && h.cleanup != nil {
		h.cleanup.Enqueue(oldAvatar)
	}

	response.Success(c, user)
}
