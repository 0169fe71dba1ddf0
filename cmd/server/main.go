package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/config"
	"github.com/renobook/internal/db"
	"github.com/renobook/internal/handler"
	"github.com/renobook/internal/router"
	"github.com/renobook/internal/store"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 内置管理员账号（仅在首次启动且提供了凭据时创建）
	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// 内容仓库：启动时读取一次快照，之后每次变更整体覆盖写回
	snapshots := db.NewSnapshotStore(db.DB, db.SnapshotKeyCMSState)
	contentStore := store.New(snapshots)

	api := handler.NewAPI(contentStore, cfg.UploadDir, cfg.UploadURLPath)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadDir, "web/template/admin/*.html")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
