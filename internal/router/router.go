package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由。
// templateGlob 为空时跳过后台模板加载，主要面向测试场景。
func SetupRouter(api *handler.API, sessionSecret, uploadDir, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("renobook_session", store))

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	// 静态文件服务；/uploads 是上传目录的别名，与公开 URL 前缀解耦
	r.Static("/static", "./web/static")
	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 公共站点：首页与按 slug 解析的动态页面。
	// slug 路由挂在 NoRoute 上，所有未匹配路径都先尝试按页面解析。
	r.GET("/", api.ShowHome)
	r.NoRoute(api.ShowPage)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/new", api.ShowPageEditor)
			auth.GET("/pages/:id/edit", api.ShowPageEditor)
			auth.GET("/settings", api.ShowSettings)

			// API路由
			apiGroup := auth.Group("/api")
			{
				apiGroup.GET("/pages", api.GetPages)
				apiGroup.GET("/pages/:id", api.GetPage)
				apiGroup.POST("/pages/:id/publish", api.PublishPage)
				apiGroup.DELETE("/pages/:id", api.DeletePage)
				apiGroup.POST("/reset", api.ResetContent)

				apiGroup.POST("/drafts", api.OpenDraft)
				apiGroup.GET("/drafts/:token", api.GetDraft)
				apiGroup.PUT("/drafts/:token", api.UpdateDraft)
				apiGroup.DELETE("/drafts/:token", api.DiscardDraft)
				apiGroup.POST("/drafts/:token/sections", api.AddSection)
				apiGroup.PUT("/drafts/:token/sections/:sectionId", api.UpdateSection)
				apiGroup.PUT("/drafts/:token/sections/:sectionId/features", api.UpdateSectionFeatures)
				apiGroup.DELETE("/drafts/:token/sections/:sectionId", api.DeleteSection)
				apiGroup.POST("/drafts/:token/sections/:sectionId/move", api.MoveSection)
				apiGroup.POST("/drafts/:token/import", api.ImportMarkdown)
				apiGroup.POST("/drafts/:token/save", api.SaveDraft)

				apiGroup.GET("/settings", api.GetSettings)
				apiGroup.PUT("/settings", api.UpdateSettings)
				apiGroup.GET("/data", api.GetSiteData)
				apiGroup.PUT("/data", api.UpdateSiteData)

				apiGroup.POST("/upload", api.UploadImage)
			}
		}
	}

	return r
}
