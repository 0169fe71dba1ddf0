package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/renobook/internal/store"
)

// 测试路由不挂认证与会话中间件，直接暴露 handler 本身的行为。
func newTestRouter() (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	api := NewAPI(store.New(nil), "", "/static/uploads")

	r := gin.New()
	r.GET("/", api.ShowHome)
	r.NoRoute(api.ShowPage)

	r.GET("/api/pages", api.GetPages)
	r.GET("/api/pages/:id", api.GetPage)
	r.POST("/api/pages/:id/publish", api.PublishPage)
	r.DELETE("/api/pages/:id", api.DeletePage)
	r.POST("/api/reset", api.ResetContent)

	r.POST("/api/drafts", api.OpenDraft)
	r.GET("/api/drafts/:token", api.GetDraft)
	r.PUT("/api/drafts/:token", api.UpdateDraft)
	r.DELETE("/api/drafts/:token", api.DiscardDraft)
	r.POST("/api/drafts/:token/sections", api.AddSection)
	r.PUT("/api/drafts/:token/sections/:sectionId", api.UpdateSection)
	r.PUT("/api/drafts/:token/sections/:sectionId/features", api.UpdateSectionFeatures)
	r.DELETE("/api/drafts/:token/sections/:sectionId", api.DeleteSection)
	r.POST("/api/drafts/:token/sections/:sectionId/move", api.MoveSection)
	r.POST("/api/drafts/:token/import", api.ImportMarkdown)
	r.POST("/api/drafts/:token/save", api.SaveDraft)

	r.GET("/api/settings", api.GetSettings)
	r.PUT("/api/settings", api.UpdateSettings)
	r.GET("/api/data", api.GetSiteData)
	r.PUT("/api/data", api.UpdateSiteData)

	return api, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) store.Page {
	t.Helper()

	raw, ok := decodeBody(t, w)["page"]
	if !ok {
		t.Fatalf("expected page in response, got %q", w.Body.String())
	}
	var page store.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return page
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
