package reply

import (
	"microblog/internal/domain/reply/handler"
	"microblog/internal/domain/reply/repository"
	"microblog/internal/domain/reply/service"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/registry"
)

// ReplyModule 回复模块
type ReplyModule struct{}

func init() {
	registry.Register(&ReplyModule{})
}

func (m *ReplyModule) Name() string {
	return "reply"
}

func (m *ReplyModule) Priority() int {
	return 30
}

func (m *ReplyModule) Init(ctx *registry.ModuleContext) error {
	rRepo := repository.NewReplyRepository(ctx.DB)
	rService := service.NewReplyService(rRepo, ctx.Logger)
	rHandler := handler.NewReplyHandler(rService, ctx.Logger)

	setupRoutes(ctx, rHandler)

	return nil
}

func setupRoutes(ctx *registry.ModuleContext, h *handler.ReplyHandler) {
	g := ctx.Router.Group("/replies")

	read := g.Group("")
	read.Use(middleware.OptionalAuth(ctx.JWT))
	{
		read.GET("/post/:postId", h.GetPostReplies)
		read.GET("/:id", h.GetReply)
	}

	write := g.Group("")
	write.Use(middleware.Auth(ctx.JWT))
	{
		write.POST("", h.CreateReply)
		write.PATCH("/:id", h.UpdateReply)
		write.DELETE("/:id", h.DeleteReply)
	}
}
