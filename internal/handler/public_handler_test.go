package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/renobook/internal/store"
)

func TestShowHomeRendersSiteData(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/", nil)
	requireStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html response, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "RenoBook") {
		t.Fatal("expected site name on the home page")
	}
}

func TestShowPageResolvesPublishedSlug(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/about", nil)
	requireStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "About RenoBook") {
		t.Fatalf("expected about page content, got %s", w.Body.String())
	}
}

func TestShowPageUnknownAndUnpublishedShareNotFoundView(t *testing.T) {
	api, r := newTestRouter()
	api.Store().CreatePage(store.PageDraft{Slug: "secret", Title: "Secret Draft"})

	unknown := doJSON(t, r, http.MethodGet, "/no-such-page", nil)
	requireStatus(t, unknown, http.StatusNotFound)
	if !strings.Contains(unknown.Body.String(), "Page Not Found") {
		t.Fatal("expected the fixed not-found view")
	}

	draft := doJSON(t, r, http.MethodGet, "/secret", nil)
	requireStatus(t, draft, http.StatusNotFound)

	// 草稿与未知 slug 的响应不可区分
	if draft.Body.String() != unknown.Body.String() {
		t.Fatal("expected identical bodies for unknown and unpublished slugs")
	}
	if strings.Contains(draft.Body.String(), "Secret Draft") {
		t.Fatal("expected no draft content to leak")
	}
}

func TestShowPageRejectsNonGetMethods(t *testing.T) {
	_, r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/about", nil)
	requireStatus(t, w, http.StatusNotFound)
}
