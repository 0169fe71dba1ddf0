package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/store"
)

// GetPages 返回按关键字与发布状态过滤后的页面列表。
func (a *API) GetPages(c *gin.Context) {
	filter := store.ListFilter{
		Search: c.Query("q"),
		Status: store.PublishFilter(c.DefaultQuery("status", string(store.FilterAll))),
	}

	switch filter.Status {
	case store.FilterAll, store.FilterPublished, store.FilterDraft:
	default:
		respondError(c, http.StatusBadRequest, "无效的状态过滤条件")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": a.store.ListPages(filter)})
}

// GetPage 按 ID 返回单个页面。
func (a *API) GetPage(c *gin.Context) {
	page, ok := a.store.GetPage(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "页面不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

type publishPayload struct {
	IsPublished *bool `json:"isPublished"`
}

// PublishPage 切换页面的发布状态；载荷省略时在当前状态上取反。
func (a *API) PublishPage(c *gin.Context) {
	id := c.Param("id")

	page, ok := a.store.GetPage(id)
	if !ok {
		respondError(c, http.StatusNotFound, "页面不存在")
		return
	}

	var payload publishPayload
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &payload, "发布状态格式不正确") {
			return
		}
	}

	next := !page.IsPublished
	if payload.IsPublished != nil {
		next = *payload.IsPublished
	}

	a.store.UpdatePage(id, store.PagePatch{IsPublished: &next})
	updated, _ := a.store.GetPage(id)
	c.JSON(http.StatusOK, gin.H{"page": updated})
}

// DeletePage 删除页面。删除不可恢复，必须带 confirm=true 显式确认。
func (a *API) DeletePage(c *gin.Context) {
	if c.Query("confirm") != "true" {
		respondError(c, http.StatusBadRequest, "删除页面需要显式确认")
		return
	}

	if !a.store.DeletePage(c.Param("id")) {
		respondError(c, http.StatusNotFound, "页面不存在")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面已删除"})
}

// ResetContent 丢弃所有持久化内容并恢复内置示例数据。
func (a *API) ResetContent(c *gin.Context) {
	if c.Query("confirm") != "true" {
		respondError(c, http.StatusBadRequest, "重置站点内容需要显式确认")
		return
	}

	a.store.ResetToDefaults()
	c.JSON(http.StatusOK, gin.H{"message": "站点内容已恢复为示例数据"})
}
