package store

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persister is the save-on-write port behind the store. Implementations
// persist one opaque snapshot record under a single well-known slot.
type Persister interface {
	// Save overwrites the snapshot record wholesale.
	Save(raw []byte) error
	// Load returns the stored snapshot, or (nil, nil) when none exists.
	Load() ([]byte, error)
	// Reset removes the snapshot record.
	Reset() error
}

// PublishFilter narrows a page listing by publish state.
type PublishFilter string

const (
	FilterAll       PublishFilter = "all"
	FilterPublished PublishFilter = "published"
	FilterDraft     PublishFilter = "draft"
)

// ListFilter describes the page list workflow's search criteria.
type ListFilter struct {
	Search string
	Status PublishFilter
}

// PageDraft carries the caller-supplied fields of a page to be created.
type PageDraft struct {
	Slug           string
	Title          string
	Description    string
	IsPublished    bool
	Sections       []Section
	SEOTitle       string
	SEODescription string
	FeaturedImage  string
}

// PagePatch is a partial page update; nil fields are left untouched.
// Sections replaces the whole list when non-nil.
type PagePatch struct {
	Slug           *string
	Title          *string
	Description    *string
	IsPublished    *bool
	Sections       []Section
	SEOTitle       *string
	SEODescription *string
	FeaturedImage  *string
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	SiteName        *string
	SiteDescription *string
	PrimaryColor    *string
	SecondaryColor  *string
	Logo            *string
	Favicon         *string
	SocialLinks     map[string]string
}

// DataPatch is a partial static-site-data update; nil fields are left untouched.
type DataPatch struct {
	Navigation   []NavigationItem
	Hero         *HeroContent
	Benefits     []BenefitItem
	Laptops      []Product
	Process      []ProcessStep
	Testimonials []Testimonial
	Footer       []FooterSection
	Contact      *ContactInfo
	Newsletter   *Newsletter
}

// Store 持有全部内容聚合，是进程内唯一的内容归属方。
// 每次变更都会把完整快照写入持久化端口；写入失败只记录日志,
// 内存状态在本次会话内始终是权威数据。
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
}

// New builds a store seeded from the built-in defaults and, when the
// persister holds a snapshot, rehydrated from it. A broken snapshot is
// logged and ignored.
func New(p Persister) *Store {
	s := &Store{state: DefaultState(), persister: p}

	if p == nil {
		return s
	}

	raw, err := p.Load()
	if err != nil {
		log.Printf("store: load snapshot: %v", err)
		return s
	}
	if len(raw) == 0 {
		return s
	}

	var loaded State
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("store: decode snapshot: %v", err)
		return s
	}
	s.state = loaded

	return s
}

// persist 在持有写锁时调用，整体覆盖快照记录。
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("store: encode snapshot: %v", err)
		return
	}
	if err := s.persister.Save(raw); err != nil {
		log.Printf("store: save snapshot: %v", err)
	}
}

// CreatePage 赋予新页面唯一 ID 与时间戳后追加到集合。
// 不做 slug 唯一性检查，解析时以列表顺序首个匹配为准。
func (s *Store) CreatePage(draft PageDraft) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	page := Page{
		ID:             uuid.NewString(),
		Slug:           draft.Slug,
		Title:          draft.Title,
		Description:    draft.Description,
		IsPublished:    draft.IsPublished,
		CreatedAt:      now,
		UpdatedAt:      now,
		Sections:       draft.Sections,
		SEOTitle:       draft.SEOTitle,
		SEODescription: draft.SEODescription,
		FeaturedImage:  draft.FeaturedImage,
	}
	if page.Sections == nil {
		page.Sections = []Section{}
	}

	s.state.Pages = append(s.state.Pages, page)
	s.persist()

	return page.Clone()
}

// UpdatePage 将补丁合并进匹配的页面并刷新更新时间。
// 未找到时返回 false，不做任何修改。
func (s *Store) UpdatePage(id string, patch PagePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Pages {
		if s.state.Pages[i].ID != id {
			continue
		}

		page := &s.state.Pages[i]
		if patch.Slug != nil {
			page.Slug = *patch.Slug
		}
		if patch.Title != nil {
			page.Title = *patch.Title
		}
		if patch.Description != nil {
			page.Description = *patch.Description
		}
		if patch.IsPublished != nil {
			page.IsPublished = *patch.IsPublished
		}
		if patch.Sections != nil {
			page.Sections = patch.Sections
		}
		if patch.SEOTitle != nil {
			page.SEOTitle = *patch.SEOTitle
		}
		if patch.SEODescription != nil {
			page.SEODescription = *patch.SEODescription
		}
		if patch.FeaturedImage != nil {
			page.FeaturedImage = *patch.FeaturedImage
		}
		page.UpdatedAt = time.Now()

		s.persist()
		return true
	}

	return false
}

// DeletePage 移除匹配的页面；未找到时不做任何事。没有级联副作用。
func (s *Store) DeletePage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Pages {
		if s.state.Pages[i].ID == id {
			s.state.Pages = append(s.state.Pages[:i], s.state.Pages[i+1:]...)
			s.persist()
			return true
		}
	}

	return false
}

// GetPage 按 ID 返回页面副本。
func (s *Store) GetPage(id string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Pages {
		if s.state.Pages[i].ID == id {
			return s.state.Pages[i].Clone(), true
		}
	}
	return Page{}, false
}

// GetPageBySlug 返回首个 slug 匹配且已发布的页面。
// 未发布与不存在同样返回未找到，避免泄露草稿的存在。
func (s *Store) GetPageBySlug(slug string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Pages {
		if s.state.Pages[i].Slug == slug && s.state.Pages[i].IsPublished {
			return s.state.Pages[i].Clone(), true
		}
	}
	return Page{}, false
}

// ListPages 按标题/slug 模糊匹配与发布状态过滤页面集合。
func (s *Store) ListPages(filter ListFilter) []Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	status := filter.Status
	if status == "" {
		status = FilterAll
	}

	out := make([]Page, 0, len(s.state.Pages))
	for i := range s.state.Pages {
		page := &s.state.Pages[i]

		if needle != "" &&
			!strings.Contains(strings.ToLower(page.Title), needle) &&
			!strings.Contains(strings.ToLower(page.Slug), needle) {
			continue
		}
		if status == FilterPublished && !page.IsPublished {
			continue
		}
		if status == FilterDraft && page.IsPublished {
			continue
		}

		out = append(out, page.Clone())
	}

	return out
}

// UpdateSettings 把补丁浅合并进站点设置单例。
func (s *Store) UpdateSettings(patch SettingsPatch) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := &s.state.Settings
	if patch.SiteName != nil {
		settings.SiteName = *patch.SiteName
	}
	if patch.SiteDescription != nil {
		settings.SiteDescription = *patch.SiteDescription
	}
	if patch.PrimaryColor != nil {
		settings.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		settings.SecondaryColor = *patch.SecondaryColor
	}
	if patch.Logo != nil {
		settings.Logo = *patch.Logo
	}
	if patch.Favicon != nil {
		settings.Favicon = *patch.Favicon
	}
	if patch.SocialLinks != nil {
		settings.SocialLinks = patch.SocialLinks
	}

	s.persist()
	return s.state.Settings
}

// UpdateData 把补丁浅合并进静态站点数据单例。
func (s *Store) UpdateData(patch DataPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := &s.state.Data
	if patch.Navigation != nil {
		data.Navigation = patch.Navigation
	}
	if patch.Hero != nil {
		data.Hero = *patch.Hero
	}
	if patch.Benefits != nil {
		data.Benefits = patch.Benefits
	}
	if patch.Laptops != nil {
		data.Laptops = patch.Laptops
	}
	if patch.Process != nil {
		data.Process = patch.Process
	}
	if patch.Testimonials != nil {
		data.Testimonials = patch.Testimonials
	}
	if patch.Footer != nil {
		data.Footer = patch.Footer
	}
	if patch.Contact != nil {
		data.Contact = *patch.Contact
	}
	if patch.Newsletter != nil {
		data.Newsletter = *patch.Newsletter
	}

	s.persist()
}

// Settings 返回站点设置副本。
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state.Settings
	if s.state.Settings.SocialLinks != nil {
		out.SocialLinks = make(map[string]string, len(s.state.Settings.SocialLinks))
		for k, v := range s.state.Settings.SocialLinks {
			out.SocialLinks[k] = v
		}
	}
	return out
}

// Data 返回静态站点数据。
func (s *Store) Data() SiteData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Data
}

// PageCount 返回 (总数, 已发布数)，供后台面板使用。
func (s *Store) PageCount() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	published := 0
	for i := range s.state.Pages {
		if s.state.Pages[i].IsPublished {
			published++
		}
	}
	return len(s.state.Pages), published
}

// ResetToDefaults 丢弃持久化记录并从内置示例数据重新初始化。
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.Reset(); err != nil {
			log.Printf("store: reset snapshot: %v", err)
		}
	}
	s.state = DefaultState()
}

// Export 返回当前状态的完整副本，仅供测试与诊断使用。
func (s *Store) Export() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Pages = make([]Page, len(s.state.Pages))
	for i := range s.state.Pages {
		out.Pages[i] = s.state.Pages[i].Clone()
	}
	return out
}
