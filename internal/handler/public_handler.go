package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/render"
)

const htmlContentType = "text/html; charset=utf-8"

// ShowHome 渲染由静态站点数据驱动的公共首页。
func (a *API) ShowHome(c *gin.Context) {
	page := render.Home(a.store.Data(), a.store.Settings())
	c.Data(http.StatusOK, htmlContentType, []byte(page))
}

// ShowPage 按 slug 解析并渲染已发布页面，作为未匹配路径的兜底路由。
// slug 未知与页面未发布走同一个固定的未找到视图，不暴露草稿是否存在。
func (a *API) ShowPage(c *gin.Context) {
	slug := strings.Trim(c.Request.URL.Path, "/")

	page, ok := a.store.GetPageBySlug(slug)
	if !ok || c.Request.Method != http.MethodGet {
		body := render.NotFound(a.store.Settings())
		c.Data(http.StatusNotFound, htmlContentType, []byte(body))
		return
	}

	body := render.Page(page, a.store.Settings())
	c.Data(http.StatusOK, htmlContentType, []byte(body))
}
