package like

import (
	"microblog/internal/domain/like/handler"
	"microblog/internal/domain/like/repository"
	"microblog/internal/domain/like/service"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/registry"
)

// LikeModule 点赞模块
type LikeModule struct{}

func init() {
	registry.Register(&LikeModule{})
}

func (m *LikeModule) Name() string {
	return "like"
}

func (m *LikeModule) Priority() int {
	return 40
}

func (m *LikeModule) Init(ctx *registry.ModuleContext) error {
	lRepo := repository.NewLikeRepository(ctx.DB)
	lService := service.NewLikeService(lRepo, ctx.Logger)
	lHandler := handler.NewLikeHandler(lService, ctx.Logger)

	setupRoutes(ctx, lHandler)

	return nil
}

func setupRoutes(ctx *registry.ModuleContext, h *handler.LikeHandler) {
	g := ctx.Router.Group("/likes")
	g.Use(middleware.Auth(ctx.JWT))
	{
		g.POST("/posts/:id", h.LikePost)
		g.DELETE("/posts/:id", h.UnlikePost)
		g.POST("/replies/:id", h.LikeReply)
		g.DELETE("/replies/:id", h.UnlikeReply)
	}
}
