package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/editor"
	"github.com/renobook/internal/store"
)

// 草稿是编辑会话里页面的临时副本：所有区块操作都发生在草稿上，
// 只有保存才会写回内容仓库，丢弃则不留任何痕迹。

type openDraftPayload struct {
	PageID string `json:"pageId"`
}

// OpenDraft 为新页面或已有页面打开一份编辑草稿。
func (a *API) OpenDraft(c *gin.Context) {
	var payload openDraftPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	var draft *editor.Draft
	if payload.PageID == "" || payload.PageID == "new" {
		draft = editor.NewDraft()
	} else {
		page, ok := a.store.GetPage(payload.PageID)
		if !ok {
			respondError(c, http.StatusNotFound, "页面不存在")
			return
		}
		draft = editor.FromPage(page)
	}

	token := a.drafts.Open(draft)
	c.JSON(http.StatusOK, gin.H{"token": token, "page": draft.Page()})
}

func (a *API) draftFor(c *gin.Context) (*editor.Draft, string, bool) {
	token := c.Param("token")
	draft, ok := a.drafts.Get(token)
	if !ok {
		respondError(c, http.StatusNotFound, "草稿不存在或已被丢弃")
		return nil, "", false
	}
	return draft, token, true
}

// GetDraft 返回草稿当前内容。
func (a *API) GetDraft(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": draft.Page(), "isNew": draft.IsNew()})
}

type draftPatchPayload struct {
	Title          *string `json:"title"`
	Slug           *string `json:"slug"`
	Description    *string `json:"description"`
	IsPublished    *bool   `json:"isPublished"`
	SEOTitle       *string `json:"seoTitle"`
	SEODescription *string `json:"seoDescription"`
	FeaturedImage  *string `json:"featuredImage"`
}

// UpdateDraft 更新草稿的页面元信息。标题变更会在 slug 与 SEO 标题
// 未被手动改过时联动填充；直接提交 slug 或 SEO 标题视为手动覆盖。
func (a *API) UpdateDraft(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload draftPatchPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	if payload.Title != nil {
		draft.SetTitle(*payload.Title)
	}
	if payload.Slug != nil {
		draft.SetSlug(*payload.Slug)
	}
	if payload.Description != nil {
		draft.SetDescription(*payload.Description)
	}
	if payload.IsPublished != nil {
		draft.SetPublished(*payload.IsPublished)
	}
	if payload.SEOTitle != nil {
		draft.SetSEOTitle(*payload.SEOTitle)
	}
	if payload.SEODescription != nil {
		draft.SetSEODescription(*payload.SEODescription)
	}
	if payload.FeaturedImage != nil {
		draft.SetFeaturedImage(*payload.FeaturedImage)
	}

	c.JSON(http.StatusOK, gin.H{"page": draft.Page()})
}

type addSectionPayload struct {
	Type store.SectionType `json:"type"`
}

// AddSection 向草稿追加一个新区块。
func (a *API) AddSection(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload addSectionPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}
	if !payload.Type.Known() {
		respondError(c, http.StatusBadRequest, "未知的区块类型")
		return
	}

	section := draft.AddSection(payload.Type)
	c.JSON(http.StatusOK, gin.H{"section": section, "page": draft.Page()})
}

type sectionPatchPayload struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	ImageURL        *string `json:"imageUrl"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
}

// UpdateSection 合并区块补丁。
func (a *API) UpdateSection(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload sectionPatchPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	updated := draft.UpdateSection(c.Param("sectionId"), editor.SectionPatch{
		Title:           payload.Title,
		Content:         payload.Content,
		ImageURL:        payload.ImageURL,
		BackgroundColor: payload.BackgroundColor,
		TextColor:       payload.TextColor,
	})
	if !updated {
		respondError(c, http.StatusNotFound, "区块不存在")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": draft.Page()})
}

type featuresPayload struct {
	Features string `json:"features"`
}

// UpdateSectionFeatures 解析外部编辑的 features 数组并写入区块。
// 解析失败时保留原值并返回警告，编辑器不中断。
func (a *API) UpdateSectionFeatures(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload featuresPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	items, err := editor.ParseFeatures(payload.Features)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"warning": "features 内容不是合法的条目数组，已保留原有内容",
			"page":    draft.Page(),
		})
		return
	}

	if !draft.SetSectionFeatures(c.Param("sectionId"), items) {
		respondError(c, http.StatusNotFound, "区块不存在")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": draft.Page()})
}

// DeleteSection 从草稿移除区块；其余区块的 order 保持原值。
func (a *API) DeleteSection(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	draft.DeleteSection(c.Param("sectionId"))
	c.JSON(http.StatusOK, gin.H{"page": draft.Page()})
}

type movePayload struct {
	Direction editor.Direction `json:"direction"`
}

// MoveSection 将区块向上或向下移动一位，边界处为空操作。
func (a *API) MoveSection(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload movePayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}
	if payload.Direction != editor.MoveUp && payload.Direction != editor.MoveDown {
		respondError(c, http.StatusBadRequest, "未知的移动方向")
		return
	}

	moved := draft.MoveSection(c.Param("sectionId"), payload.Direction)
	c.JSON(http.StatusOK, gin.H{"moved": moved, "page": draft.Page()})
}

type importPayload struct {
	Markdown string `json:"markdown"`
}

// ImportMarkdown 把粘贴的 markdown 文档转换为草稿区块。
func (a *API) ImportMarkdown(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	var payload importPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	added := draft.ImportMarkdown(payload.Markdown)
	c.JSON(http.StatusOK, gin.H{"sections": added, "page": draft.Page()})
}

// SaveDraft 校验并把草稿提交回内容仓库。
func (a *API) SaveDraft(c *gin.Context) {
	draft, _, ok := a.draftFor(c)
	if !ok {
		return
	}

	page, err := draft.Save(a.store)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrTitleRequired):
			respondError(c, http.StatusUnprocessableEntity, "请填写页面标题")
		case errors.Is(err, editor.ErrSlugRequired):
			respondError(c, http.StatusUnprocessableEntity, "请填写页面 slug")
		case errors.Is(err, editor.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "页面已不存在")
		default:
			respondError(c, http.StatusInternalServerError, "保存失败，请稍后重试")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面已保存", "page": page})
}

// DiscardDraft 丢弃草稿，相当于未保存就离开编辑器。
func (a *API) DiscardDraft(c *gin.Context) {
	_, token, ok := a.draftFor(c)
	if !ok {
		return
	}

	a.drafts.Discard(token)
	c.JSON(http.StatusOK, gin.H{"message": "草稿已丢弃"})
}
