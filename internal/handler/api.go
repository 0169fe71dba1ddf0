package handler

import (
	"github.com/renobook/internal/editor"
	"github.com/renobook/internal/store"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store     *store.Store
	drafts    *editor.Manager
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set around the content store.
func NewAPI(contentStore *store.Store, uploadDir, uploadURL string) *API {
	return &API{
		store:     contentStore,
		drafts:    editor.NewManager(),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// Store exposes the content store for tests and bootstrap code.
func (a *API) Store() *store.Store {
	return a.store
}
