package store

import (
	"errors"
	"testing"
)

// memPersister 是内存版持久化端口，便于在测试里观察快照写入。
type memPersister struct {
	data    []byte
	saves   int
	failing bool
}

func (m *memPersister) Save(raw []byte) error {
	if m.failing {
		return errors.New("persister unavailable")
	}
	m.data = append([]byte(nil), raw...)
	m.saves++
	return nil
}

func (m *memPersister) Load() ([]byte, error) {
	if m.failing {
		return nil, errors.New("persister unavailable")
	}
	return m.data, nil
}

func (m *memPersister) Reset() error {
	if m.failing {
		return errors.New("persister unavailable")
	}
	m.data = nil
	return nil
}

func TestCreatePageAssignsIDAndTimestamps(t *testing.T) {
	s := New(nil)

	page := s.CreatePage(PageDraft{Slug: "pricing", Title: "Pricing"})

	if page.ID == "" {
		t.Fatal("expected generated page id")
	}
	if page.CreatedAt.IsZero() || !page.CreatedAt.Equal(page.UpdatedAt) {
		t.Fatalf("expected creation and update timestamps to match, got %v / %v", page.CreatedAt, page.UpdatedAt)
	}
	if page.Sections == nil {
		t.Fatal("expected sections to be initialized")
	}
}

func TestCreateThenUpdateRefreshesTimestamp(t *testing.T) {
	s := New(nil)

	page := s.CreatePage(PageDraft{Slug: "pricing", Title: "Pricing"})

	title := "Pricing 2025"
	if !s.UpdatePage(page.ID, PagePatch{Title: &title}) {
		t.Fatal("expected update on freshly created page to succeed")
	}

	updated, ok := s.GetPage(page.ID)
	if !ok {
		t.Fatal("expected page to exist")
	}
	if updated.Title != "Pricing 2025" {
		t.Fatalf("expected merged title, got %q", updated.Title)
	}
	if updated.UpdatedAt.Before(page.UpdatedAt) {
		t.Fatalf("expected updatedAt to move forward, got %v before %v", updated.UpdatedAt, page.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(page.CreatedAt) {
		t.Fatal("expected createdAt to stay unchanged")
	}
}

func TestUpdatePageUnknownIDIsNoop(t *testing.T) {
	s := New(nil)
	before := len(s.ListPages(ListFilter{}))

	title := "ghost"
	if s.UpdatePage("missing", PagePatch{Title: &title}) {
		t.Fatal("expected update of unknown id to report not found")
	}
	if len(s.ListPages(ListFilter{})) != before {
		t.Fatal("expected page collection to stay unchanged")
	}
}

func TestDeletePageThenResolveReturnsNotFound(t *testing.T) {
	s := New(nil)

	page := s.CreatePage(PageDraft{Slug: "team", Title: "Team", IsPublished: true})
	if _, ok := s.GetPageBySlug("team"); !ok {
		t.Fatal("expected published page to resolve")
	}

	if !s.DeletePage(page.ID) {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := s.GetPageBySlug("team"); ok {
		t.Fatal("expected deleted page to stop resolving")
	}
	if s.DeletePage(page.ID) {
		t.Fatal("expected second delete to be a no-op")
	}
}

func TestGetPageBySlugIgnoresDrafts(t *testing.T) {
	s := New(nil)

	s.CreatePage(PageDraft{Slug: "hidden", Title: "Hidden"})

	if _, ok := s.GetPageBySlug("hidden"); ok {
		t.Fatal("expected unpublished page to be excluded from resolution")
	}
}

func TestGetPageBySlugFirstMatchWins(t *testing.T) {
	s := New(nil)

	first := s.CreatePage(PageDraft{Slug: "dup", Title: "First", IsPublished: true})
	s.CreatePage(PageDraft{Slug: "dup", Title: "Second", IsPublished: true})

	resolved, ok := s.GetPageBySlug("dup")
	if !ok {
		t.Fatal("expected slug to resolve")
	}
	if resolved.ID != first.ID {
		t.Fatalf("expected first match in list order to win, got %q", resolved.Title)
	}
}

func TestListPagesFilters(t *testing.T) {
	s := New(nil)
	s.ResetToDefaults()

	s.CreatePage(PageDraft{Slug: "faq", Title: "FAQ", IsPublished: true})
	s.CreatePage(PageDraft{Slug: "roadmap", Title: "Roadmap"})

	published := s.ListPages(ListFilter{Status: FilterPublished})
	for _, page := range published {
		if !page.IsPublished {
			t.Fatalf("expected only published pages, got draft %q", page.Slug)
		}
	}

	drafts := s.ListPages(ListFilter{Status: FilterDraft})
	if len(drafts) != 1 || drafts[0].Slug != "roadmap" {
		t.Fatalf("expected only the roadmap draft, got %v", drafts)
	}

	bySearch := s.ListPages(ListFilter{Search: "ROAD"})
	if len(bySearch) != 1 || bySearch[0].Slug != "roadmap" {
		t.Fatalf("expected case-insensitive title/slug search, got %v", bySearch)
	}
}

func TestUpdateSettingsShallowMerge(t *testing.T) {
	s := New(nil)

	name := "New Name"
	updated := s.UpdateSettings(SettingsPatch{SiteName: &name})

	if updated.SiteName != "New Name" {
		t.Fatalf("expected site name to change, got %q", updated.SiteName)
	}
	if updated.SiteDescription != DefaultSettings().SiteDescription {
		t.Fatal("expected untouched fields to keep their values")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	persister := &memPersister{}

	s := New(persister)
	created := s.CreatePage(PageDraft{
		Slug:        "contact",
		Title:       "Contact",
		IsPublished: true,
		Sections: []Section{
			{
				ID:    "sec-1",
				Type:  SectionFeatures,
				Order: 1,
				Features: []FeatureItem{
					{Icon: "Shield", Title: "Safe", Description: "Always"},
				},
			},
		},
	})
	name := "Persisted"
	s.UpdateSettings(SettingsPatch{SiteName: &name})

	reloaded := New(persister)

	page, ok := reloaded.GetPageBySlug("contact")
	if !ok {
		t.Fatal("expected reloaded store to resolve persisted page")
	}
	if page.ID != created.ID {
		t.Fatalf("expected identical page id, got %q", page.ID)
	}
	if !page.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected timestamps to survive the round trip, got %v", page.CreatedAt)
	}
	if len(page.Sections) != 1 || len(page.Sections[0].Features) != 1 {
		t.Fatalf("expected features to survive the round trip, got %v", page.Sections)
	}
	if reloaded.Settings().SiteName != "Persisted" {
		t.Fatalf("expected settings to survive the round trip, got %q", reloaded.Settings().SiteName)
	}
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	persister := &memPersister{failing: true}

	s := New(persister)
	page := s.CreatePage(PageDraft{Slug: "offline", Title: "Offline", IsPublished: true})

	// 持久化不可用时内存状态依旧是权威数据
	if _, ok := s.GetPage(page.ID); !ok {
		t.Fatal("expected in-memory state to stay authoritative")
	}
	if _, ok := s.GetPageBySlug("offline"); !ok {
		t.Fatal("expected resolution to keep working without persistence")
	}
}

func TestResetToDefaults(t *testing.T) {
	persister := &memPersister{}
	s := New(persister)

	s.CreatePage(PageDraft{Slug: "temp", Title: "Temp"})
	s.ResetToDefaults()

	if _, ok := s.GetPageBySlug("about"); !ok {
		t.Fatal("expected sample pages after reset")
	}
	if len(s.ListPages(ListFilter{Search: "temp"})) != 0 {
		t.Fatal("expected created page to be gone after reset")
	}
	if persister.data != nil {
		t.Fatal("expected persisted record to be removed")
	}
}

func TestExportReturnsDetachedCopy(t *testing.T) {
	s := New(nil)
	s.CreatePage(PageDraft{Slug: "exported", Title: "Exported", Sections: []Section{{ID: "sec", Type: SectionText, Content: "before", Order: 1}}})

	snapshot := s.Export()
	var exported *Page
	for i := range snapshot.Pages {
		if snapshot.Pages[i].Slug == "exported" {
			exported = &snapshot.Pages[i]
		}
	}
	if exported == nil {
		t.Fatal("expected created page in the export")
	}

	exported.Sections[0].Content = "mutated"
	fresh, _ := s.GetPage(exported.ID)
	if fresh.Sections[0].Content != "before" {
		t.Fatal("expected export to be detached from store state")
	}
}

func TestCloneIsolatesCallers(t *testing.T) {
	s := New(nil)
	created := s.CreatePage(PageDraft{
		Slug:        "iso",
		Title:       "Isolation",
		IsPublished: true,
		Sections:    []Section{{ID: "sec", Type: SectionText, Content: "original", Order: 1}},
	})

	got, _ := s.GetPage(created.ID)
	got.Sections[0].Content = "mutated"

	again, _ := s.GetPage(created.ID)
	if again.Sections[0].Content != "original" {
		t.Fatal("expected store state to be isolated from returned copies")
	}
}
