// Package editor implements the page editing workflow: a draft copy of one
// page is mutated section by section and only touches the content store on
// save. A discarded draft leaves the store untouched.
package editor

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/renobook/internal/store"
)

var (
	ErrTitleRequired   = errors.New("page title is required")
	ErrSlugRequired    = errors.New("page slug is required")
	ErrPageNotFound    = errors.New("page not found")
	ErrSectionNotFound = errors.New("section not found")
)

// Direction 表示区块移动方向。
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Draft is the transient, uncommitted working copy of a single page.
// A draft is shared across the requests of one editing session, so every
// method serializes on the draft's own lock.
type Draft struct {
	mu   sync.Mutex
	page store.Page

	// 标题变更只在 slug / SEO 标题尚未被手动改过时联动填充。
	slugTouched     bool
	seoTitleTouched bool
}

// NewDraft starts a draft for a page that does not exist yet.
func NewDraft() *Draft {
	return &Draft{page: store.Page{Sections: []store.Section{}}}
}

// FromPage starts a draft over an existing page. Fields the page already
// carries count as manually set, so later title edits leave them alone.
func FromPage(page store.Page) *Draft {
	return &Draft{
		page:            page.Clone(),
		slugTouched:     strings.TrimSpace(page.Slug) != "",
		seoTitleTouched: strings.TrimSpace(page.SEOTitle) != "",
	}
}

// Page returns a copy of the draft's current state.
func (d *Draft) Page() store.Page {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.page.Clone()
}

// IsNew reports whether the draft targets a page not yet in the store.
func (d *Draft) IsNew() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.page.ID == ""
}

// SetTitle updates the title and, while neither was manually overridden in
// this session, keeps the slug and SEO title derived from it.
func (d *Draft) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.page.Title = title
	if !d.slugTouched {
		d.page.Slug = Slugify(title)
	}
	if !d.seoTitleTouched {
		d.page.SEOTitle = title
	}
}

// SetSlug records a manual slug override.
func (d *Draft) SetSlug(slug string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.page.Slug = slug
	d.slugTouched = true
}

// SetSEOTitle records a manual SEO title override.
func (d *Draft) SetSEOTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.page.SEOTitle = title
	d.seoTitleTouched = true
}

func (d *Draft) SetDescription(description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.page.Description = description
}

func (d *Draft) SetSEODescription(description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.page.SEODescription = description
}

func (d *Draft) SetFeaturedImage(image string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.page.FeaturedImage = image
}

func (d *Draft) SetPublished(published bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.page.IsPublished = published
}

// AddSection appends a new section of the given type with a generated id,
// order = current count + 1 and type-appropriate default style tokens.
// Hero sections start dark with white text, everything else white with dark
// text.
func (d *Draft) AddSection(sectionType store.SectionType) store.Section {
	d.mu.Lock()
	defer d.mu.Unlock()

	section := store.Section{
		ID:              uuid.NewString(),
		Type:            sectionType,
		BackgroundColor: "bg-white",
		TextColor:       "text-gray-900",
		Order:           len(d.page.Sections) + 1,
	}
	if sectionType == store.SectionHero {
		section.BackgroundColor = "bg-gradient-to-br from-gray-900 to-gray-800"
		section.TextColor = "text-white"
	}

	d.page.Sections = append(d.page.Sections, section)
	return section
}

// SectionPatch is a partial section update; nil fields are left untouched.
type SectionPatch struct {
	Title           *string
	Content         *string
	ImageURL        *string
	BackgroundColor *string
	TextColor       *string
}

// UpdateSection merges the patch into the matching section.
func (d *Draft) UpdateSection(id string, patch SectionPatch) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.page.Sections {
		if d.page.Sections[i].ID != id {
			continue
		}

		section := &d.page.Sections[i]
		if patch.Title != nil {
			section.Title = *patch.Title
		}
		if patch.Content != nil {
			section.Content = *patch.Content
		}
		if patch.ImageURL != nil {
			section.ImageURL = *patch.ImageURL
		}
		if patch.BackgroundColor != nil {
			section.BackgroundColor = *patch.BackgroundColor
		}
		if patch.TextColor != nil {
			section.TextColor = *patch.TextColor
		}
		return true
	}
	return false
}

// SetSectionFeatures replaces the feature list of the matching section.
func (d *Draft) SetSectionFeatures(id string, features []store.FeatureItem) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.page.Sections {
		if d.page.Sections[i].ID == id {
			d.page.Sections[i].Features = features
			return true
		}
	}
	return false
}

// DeleteSection removes the section. Remaining order values are not
// renumbered; the stable render sort tolerates the gap.
func (d *Draft) DeleteSection(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.page.Sections {
		if d.page.Sections[i].ID == id {
			d.page.Sections = append(d.page.Sections[:i], d.page.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// MoveSection swaps the section with its neighbour in the requested
// direction, then reassigns sequential order values 1..N to the whole list.
// Moves beyond either boundary are no-ops.
func (d *Draft) MoveSection(id string, direction Direction) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	sections := make([]store.Section, len(d.page.Sections))
	copy(sections, d.page.Sections)
	sortSectionsByOrder(sections)

	index := -1
	for i := range sections {
		if sections[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	var target int
	switch direction {
	case MoveUp:
		target = index - 1
	case MoveDown:
		target = index + 1
	default:
		return false
	}
	if target < 0 || target >= len(sections) {
		return false
	}

	sections[index], sections[target] = sections[target], sections[index]
	for i := range sections {
		sections[i].Order = i + 1
	}

	d.page.Sections = sections
	return true
}

func sortSectionsByOrder(sections []store.Section) {
	for i := 1; i < len(sections); i++ {
		for j := i; j > 0 && sections[j-1].Order > sections[j].Order; j-- {
			sections[j-1], sections[j] = sections[j], sections[j-1]
		}
	}
}

// Save validates the draft and commits it through the store. Validation
// failures leave the store untouched. A slug never set manually is derived
// from the title before the non-empty check.
func (d *Draft) Save(s *store.Store) (store.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(d.page.Title) == "" {
		return store.Page{}, ErrTitleRequired
	}
	if strings.TrimSpace(d.page.Slug) == "" && !d.slugTouched {
		d.page.Slug = Slugify(d.page.Title)
	}
	if strings.TrimSpace(d.page.Slug) == "" {
		return store.Page{}, ErrSlugRequired
	}

	if d.page.ID == "" {
		created := s.CreatePage(store.PageDraft{
			Slug:           d.page.Slug,
			Title:          d.page.Title,
			Description:    d.page.Description,
			IsPublished:    d.page.IsPublished,
			Sections:       d.page.Sections,
			SEOTitle:       d.page.SEOTitle,
			SEODescription: d.page.SEODescription,
			FeaturedImage:  d.page.FeaturedImage,
		})
		d.page = created.Clone()
		return created, nil
	}

	patch := store.PagePatch{
		Slug:           &d.page.Slug,
		Title:          &d.page.Title,
		Description:    &d.page.Description,
		IsPublished:    &d.page.IsPublished,
		Sections:       d.page.Sections,
		SEOTitle:       &d.page.SEOTitle,
		SEODescription: &d.page.SEODescription,
		FeaturedImage:  &d.page.FeaturedImage,
	}
	if !s.UpdatePage(d.page.ID, patch) {
		return store.Page{}, ErrPageNotFound
	}

	saved, _ := s.GetPage(d.page.ID)
	d.page = saved.Clone()
	return saved, nil
}
