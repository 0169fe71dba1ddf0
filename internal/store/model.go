package store

import (
	"encoding/json"
	"time"
)

// SectionType 标识区块的渲染类型。
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionText         SectionType = "text"
	SectionImage        SectionType = "image"
	SectionGallery      SectionType = "gallery"
	SectionFeatures     SectionType = "features"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
)

var knownSectionTypes = map[SectionType]bool{
	SectionHero:         true,
	SectionText:         true,
	SectionImage:        true,
	SectionGallery:      true,
	SectionFeatures:     true,
	SectionTestimonials: true,
	SectionContact:      true,
}

// Known reports whether t belongs to the fixed section type enumeration.
func (t SectionType) Known() bool {
	return knownSectionTypes[t]
}

// FeatureItem 是 features 区块中的单个图文条目。
type FeatureItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section 是页面内一个有序的内容区块。
// Features 仅对 features 类型有意义，其余类型保持为 nil。
type Section struct {
	ID              string
	Type            SectionType
	Title           string
	Content         string
	ImageURL        string
	BackgroundColor string
	TextColor       string
	Order           int
	Features        []FeatureItem
}

// 快照中的区块布局沿用历史格式：features 列表嵌在 settings.features 下。
type sectionRecord struct {
	ID              string          `json:"id"`
	Type            SectionType     `json:"type"`
	Title           string          `json:"title,omitempty"`
	Content         string          `json:"content,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	TextColor       string          `json:"textColor,omitempty"`
	Order           int             `json:"order"`
	Settings        json.RawMessage `json:"settings,omitempty"`
}

type sectionSettings struct {
	Features []FeatureItem `json:"features"`
}

// MarshalJSON 按历史快照格式输出区块。
func (s Section) MarshalJSON() ([]byte, error) {
	record := sectionRecord{
		ID:              s.ID,
		Type:            s.Type,
		Title:           s.Title,
		Content:         s.Content,
		ImageURL:        s.ImageURL,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		Order:           s.Order,
	}

	if s.Type == SectionFeatures && s.Features != nil {
		raw, err := json.Marshal(sectionSettings{Features: s.Features})
		if err != nil {
			return nil, err
		}
		record.Settings = raw
	}

	return json.Marshal(record)
}

// UnmarshalJSON 读取历史快照格式。settings 结构不合法时退回空列表，
// 不让单个区块拖垮整份快照。
func (s *Section) UnmarshalJSON(data []byte) error {
	var record sectionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	*s = Section{
		ID:              record.ID,
		Type:            record.Type,
		Title:           record.Title,
		Content:         record.Content,
		ImageURL:        record.ImageURL,
		BackgroundColor: record.BackgroundColor,
		TextColor:       record.TextColor,
		Order:           record.Order,
	}

	if len(record.Settings) > 0 {
		var settings sectionSettings
		if err := json.Unmarshal(record.Settings, &settings); err == nil {
			s.Features = settings.Features
		}
	}

	return nil
}

// Page 是通过唯一 slug 发布的内容单元。
type Page struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	IsPublished    bool      `json:"isPublished"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Sections       []Section `json:"sections"`
	SEOTitle       string    `json:"seoTitle,omitempty"`
	SEODescription string    `json:"seoDescription,omitempty"`
	FeaturedImage  string    `json:"featuredImage,omitempty"`
}

// Clone 返回页面的深拷贝，编辑器在副本上工作。
func (p Page) Clone() Page {
	out := p
	out.Sections = make([]Section, len(p.Sections))
	copy(out.Sections, p.Sections)
	for i := range out.Sections {
		if src := p.Sections[i].Features; src != nil {
			out.Sections[i].Features = make([]FeatureItem, len(src))
			copy(out.Sections[i].Features, src)
		}
	}
	return out
}

// Settings 是站点级配置单例。
type Settings struct {
	SiteName        string            `json:"siteName"`
	SiteDescription string            `json:"siteDescription"`
	PrimaryColor    string            `json:"primaryColor"`
	SecondaryColor  string            `json:"secondaryColor"`
	Logo            string            `json:"logo,omitempty"`
	Favicon         string            `json:"favicon,omitempty"`
	SocialLinks     map[string]string `json:"socialLinks"`
}

// NavigationItem 是站点导航中的一项。
type NavigationItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
	Order int    `json:"order"`
}

// HeroContent 是首页主视觉文案。
type HeroContent struct {
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	Description         string `json:"description"`
	PrimaryButtonText   string `json:"primaryButtonText"`
	SecondaryButtonText string `json:"secondaryButtonText"`
}

// BenefitItem 是首页卖点栏目中的一项。
type BenefitItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

// Product 是首页商品陈列中的一台翻新笔记本。
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Specs         string  `json:"specs"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image,omitempty"`
	Color         string  `json:"color"`
	Featured      bool    `json:"featured"`
	Order         int     `json:"order"`
}

// ProcessStep 描述翻新流程中的一步。
type ProcessStep struct {
	ID          string `json:"id"`
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Testimonial 是一条客户评价。
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
	Color    string `json:"color"`
	Order    int    `json:"order"`
}

// FooterLink 是页脚栏目里的单个链接。
type FooterLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FooterSection 是页脚的一个链接栏目。
type FooterSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
	Order int          `json:"order"`
}

// ContactInfo 是站点联系方式。
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Newsletter 是订阅栏文案。
type Newsletter struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteData 是首页消费的只读站点数据单例。
type SiteData struct {
	Navigation   []NavigationItem `json:"navigation"`
	Hero         HeroContent      `json:"hero"`
	Benefits     []BenefitItem    `json:"benefits"`
	Laptops      []Product        `json:"laptops"`
	Process      []ProcessStep    `json:"process"`
	Testimonials []Testimonial    `json:"testimonials"`
	Footer       []FooterSection  `json:"footer"`
	Contact      ContactInfo      `json:"contact"`
	Newsletter   Newsletter       `json:"newsletter"`
}

// State 是持久化快照的顶层结构。
// 编辑态标记不入快照，重启后总是回到非编辑状态。
type State struct {
	Data     SiteData `json:"data"`
	Pages    []Page   `json:"pages"`
	Settings Settings `json:"settings"`
}
