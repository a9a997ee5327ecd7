package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"microblog/internal/pkg/config"
	"microblog/internal/pkg/middleware"
	"microblog/internal/pkg/registry"
	"microblog/internal/pkg/uploader"
	"microblog/internal/pkg/worker"
	"microblog/pkg/database"
	"microblog/pkg/logger"
	"microblog/pkg/metrics"
	"microblog/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "microblog/docs"

	// 注册各业务模块
	_ "microblog/internal/domain/like"
	_ "microblog/internal/domain/post"
	_ "microblog/internal/domain/reply"
	_ "microblog/internal/domain/user"
)

// @title        Microblog API
// @version      1.0
// @description  短内容社交服务：用户、帖子、回复与点赞
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	zapLog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatal("failed to init logger: ", err)
	}
	defer zapLog.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		zapLog.Fatal("failed to connect database", zap.Error(err))
	}

	collector := metrics.NewCollector()
	poolMonitor := database.NewPoolMonitor(db, collector, zapLog, 15*time.Second)
	poolMonitor.Start()
	defer poolMonitor.Stop()

	// OSS 不可用时降级启动，头像上传接口返回 500
	var up uploader.Uploader
	if ossUploader, err := uploader.NewAliyunOSSUploader(cfg.OSS); err != nil {
		zapLog.Warn("oss uploader unavailable, avatar upload disabled", zap.Error(err))
	} else {
		up = ossUploader
	}

	cleanup := worker.NewPool(up, zapLog, 2, 100)
	cleanup.Start()

	jwtMgr := utils.NewJWTManager(cfg.JWT)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(
		middleware.Recovery(zapLog),
		cors.Default(),
		middleware.Trace(),
		middleware.RequestLogger(zapLog),
		middleware.Metrics(collector),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registry.InitModules(&registry.ModuleContext{
		DB:       db,
		Router:   router,
		Logger:   zapLog,
		Config:   cfg,
		JWT:      jwtMgr,
		Uploader: up,
		Cleanup:  cleanup,
	}); err != nil {
		zapLog.Fatal("failed to init modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zapLog.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("forced shutdown", zap.Error(err))
	}
	zapLog.Info("server exited")
}
