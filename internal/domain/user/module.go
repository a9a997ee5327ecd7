package user

import (
	"microblog/internal/domain/user/handler"
	"microblog/internal/domain/user/repository"
	"microblog/internal/domain/user/service"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/registry"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	return 10
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	uRepo := repository.NewUserRepository(ctx.DB)
	uService := service.NewUserService(uRepo, ctx.JWT, ctx.Logger)
	uHandler := handler.NewUserHandler(uService, ctx.Uploader, ctx.Cleanup, ctx.Logger)

	// 2. 路由注册
	setupRoutes(ctx, uHandler)

	return nil
}

func setupRoutes(ctx *registry.ModuleContext, h *handler.UserHandler) {
	r := ctx.Router

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", middleware.Auth(ctx.JWT), h.Me)
	}

	userGroup := r.Group("/users")
	{
		userGroup.GET("", h.ListUsers)
		userGroup.PATCH("/profile", middleware.Auth(ctx.JWT), h.UpdateProfile)
		userGroup.POST("/avatar", middleware.Auth(ctx.JWT), h.UploadAvatar)
		userGroup.GET("/:username", h.GetProfile)
	}
}
