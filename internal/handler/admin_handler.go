package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
		"site":  a.store.Settings().SiteName,
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "会话保存失败"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	total, published := a.store.PageCount()

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":          "管理面板",
		"username":       username,
		"pageCount":      total,
		"publishedCount": published,
		"draftCount":     total - published,
		"site":           a.store.Settings().SiteName,
	})
}

// ShowPageList 渲染页面管理列表
func (a *API) ShowPageList(c *gin.Context) {
	c.HTML(http.StatusOK, "pages.html", gin.H{
		"title": "页面管理",
		"site":  a.store.Settings().SiteName,
	})
}

// ShowPageEditor 渲染页面编辑器，:id 可以是页面 ID 或字面量 new。
func (a *API) ShowPageEditor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = "new"
	}
	isNew := id == "new"
	if !isNew {
		if _, ok := a.store.GetPage(id); !ok {
			c.Redirect(http.StatusFound, "/admin/pages")
			return
		}
	}

	c.HTML(http.StatusOK, "page_edit.html", gin.H{
		"title":  "编辑页面",
		"pageId": id,
		"isNew":  isNew,
		"site":   a.store.Settings().SiteName,
	})
}

// ShowSettings 渲染站点设置页面
func (a *API) ShowSettings(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"title": "站点设置",
		"site":  a.store.Settings().SiteName,
	})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
