package post

import (
	"microblog/internal/domain/post/handler"
	"microblog/internal/domain/post/repository"
	"microblog/internal/domain/post/service"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/registry"
)

// PostModule 帖子模块
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 20
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	pRepo := repository.NewPostRepository(ctx.DB)
	pService := service.NewPostService(pRepo, ctx.Logger)
	pHandler := handler.NewPostHandler(pService, ctx.Logger)

	setupRoutes(ctx, pHandler)

	return nil
}

func setupRoutes(ctx *registry.ModuleContext, h *handler.PostHandler) {
	g := ctx.Router.Group("/posts")

	// 读接口匿名可访问，带凭证时附带 liked 标记
	read := g.Group("")
	read.Use(middleware.OptionalAuth(ctx.JWT))
	{
		read.GET("/feed", h.GetFeed)
		read.GET("/user/:userId", h.GetUserPosts)
		read.GET("/:id", h.GetPost)
	}

	// 写接口要求登录
	write := g.Group("")
	write.Use(middleware.Auth(ctx.JWT))
	{
		write.POST("", h.CreatePost)
		write.PATCH("/:id", h.UpdatePost)
		write.DELETE("/:id", h.DeletePost)
	}
}
