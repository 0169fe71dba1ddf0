package render

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/renobook/internal/store"
)

func TestSectionsSortIsStableAndIdempotent(t *testing.T) {
	sections := []store.Section{
		{ID: "c", Type: store.SectionText, Title: "Third", Order: 5, Content: "c"},
		{ID: "a", Type: store.SectionText, Title: "First", Order: 1, Content: "a"},
		{ID: "b1", Type: store.SectionText, Title: "Tie One", Order: 2, Content: "b1"},
		{ID: "b2", Type: store.SectionText, Title: "Tie Two", Order: 2, Content: "b2"},
	}

	first := string(Sections(sections))
	second := string(Sections(sections))

	if first != second {
		t.Fatal("expected rendering to be deterministic")
	}
	if strings.Index(first, "First") > strings.Index(first, "Third") {
		t.Fatal("expected order values to drive section sequence")
	}
	// 相同 order 保持原相对位置
	if strings.Index(first, "Tie One") > strings.Index(first, "Tie Two") {
		t.Fatal("expected duplicate order values to keep their relative position")
	}

	// 输入切片不被排序改写
	if sections[0].ID != "c" {
		t.Fatal("expected caller slice to stay untouched")
	}
}

func TestSectionUnknownTypeRendersNothing(t *testing.T) {
	out := Section(store.Section{ID: "x", Type: "carousel", Title: "Mystery", Order: 1})
	if out != "" {
		t.Fatalf("expected empty output for unknown type, got %q", out)
	}
}

func TestTextSectionSplitsParagraphsOnNewlines(t *testing.T) {
	out := string(Section(store.Section{
		ID:      "t",
		Type:    store.SectionText,
		Content: "First paragraph.\nSecond paragraph.",
		Order:   1,
	}))

	if strings.Count(out, "<p>") != 2 {
		t.Fatalf("expected one <p> per line, got %q", out)
	}
	if !strings.Contains(out, "bg-white") || !strings.Contains(out, "text-gray-900") {
		t.Fatalf("expected default style tokens, got %q", out)
	}
}

func TestFeaturesSectionRendersTiles(t *testing.T) {
	out := string(Section(store.Section{
		ID:    "f",
		Type:  store.SectionFeatures,
		Title: "Why RenoBook",
		Order: 1,
		Features: []store.FeatureItem{
			{Icon: "Shield", Title: "Warranty", Description: "12 months"},
			{Icon: "NoSuchIcon", Title: "Fallback", Description: "Default icon"},
		},
	}))

	if strings.Count(out, "feature-tile") != 2 {
		t.Fatalf("expected one tile per feature, got %q", out)
	}
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected inline icon svg, got %q", out)
	}
}

func TestIconFallsBackToDefault(t *testing.T) {
	known := Icon("Shield")
	unknown := Icon("NoSuchIcon")
	fallback := Icon("Star")

	if known == unknown {
		t.Fatal("expected known icon to differ from fallback")
	}
	if unknown != fallback {
		t.Fatal("expected unknown names to fall back to the default icon")
	}
	if KnownIcon("NoSuchIcon") {
		t.Fatal("expected unknown name to be reported as such")
	}
}

func TestContactSectionShowsStaticDetails(t *testing.T) {
	out := string(Section(store.Section{ID: "c", Type: store.SectionContact, Title: "Reach Us", Order: 1}))

	for _, want := range []string{contactPhone, contactEmail, contactAddress, "contact-form"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
}

func TestPageDocumentSnapshot(t *testing.T) {
	page := store.Page{
		ID:          "p1",
		Slug:        "about",
		Title:       "About RenoBook",
		Description: "Who we are",
		IsPublished: true,
		Sections: []store.Section{
			{ID: "s1", Type: store.SectionHero, Title: "About RenoBook", Content: "Hardware deserves a second life.", Order: 1},
			{ID: "s2", Type: store.SectionText, Title: "Our Story", Content: "Founded in 2023.\nStill going.", Order: 2},
		},
	}

	snaps.MatchSnapshot(t, Page(page, store.DefaultSettings()))
}

func TestNotFoundViewIsFixed(t *testing.T) {
	out := string(NotFound(store.DefaultSettings()))

	if !strings.Contains(out, "Page Not Found") {
		t.Fatalf("expected not-found heading, got %q", out)
	}
	if !strings.Contains(out, `href="/"`) {
		t.Fatalf("expected a link back home, got %q", out)
	}
}

func TestHomeRendersSiteData(t *testing.T) {
	data := store.DefaultSiteData()
	out := string(Home(data, store.DefaultSettings()))

	if !strings.Contains(out, data.Hero.Title) {
		t.Fatal("expected hero title on the home page")
	}
	for _, item := range data.Navigation {
		if !strings.Contains(out, item.Label) {
			t.Fatalf("expected navigation label %q", item.Label)
		}
	}
}
