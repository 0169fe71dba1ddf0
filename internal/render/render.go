// Package render expands ordered content sections into presentational HTML.
// Rendering is a pure dispatch on the section type tag: unknown types render
// nothing, malformed content degrades to empty output, nothing here can fail
// the request.
package render

import (
	"bytes"
	"html/template"
	"log"
	"sort"
	"strings"

	"github.com/renobook/internal/store"
)

const sectionTemplates = `
{{define "hero"}}
<section class="section section-hero {{.Background}} {{.TextColor}}">
  {{if .ImageURL}}<div class="hero-backdrop"><img src="{{.ImageURL}}" alt="{{.Title}}"></div>{{end}}
  <div class="container">
    {{if .Title}}<h1>{{.Title}}</h1>{{end}}
    {{if .Content}}<p class="lead">{{.Content}}</p>{{end}}
  </div>
</section>
{{end}}

{{define "text"}}
<section class="section section-text {{.Background}} {{.TextColor}}">
  <div class="container">
    {{if .Title}}<h2>{{.Title}}</h2>{{end}}
    <div class="prose">
      {{range .Paragraphs}}<p>{{.}}</p>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "features"}}
<section class="section section-features {{.Background}} {{.TextColor}}">
  <div class="container">
    {{if .Title}}<div class="section-heading"><h2>{{.Title}}</h2>{{if .Content}}<p>{{.Content}}</p>{{end}}</div>{{end}}
    <div class="feature-grid">
      {{range .Features}}<div class="feature-tile">
        <div class="feature-icon">{{.Icon}}</div>
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
      </div>
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "image"}}
<section class="section section-image {{.Background}} {{.TextColor}}">
  <div class="container">
    {{if .Title}}<h2>{{.Title}}</h2>{{end}}
    {{if .ImageURL}}<figure><img src="{{.ImageURL}}" alt="{{if .Title}}{{.Title}}{{else}}Section image{{end}}">
    {{if .Content}}<figcaption>{{.Content}}</figcaption>{{end}}</figure>{{end}}
  </div>
</section>
{{end}}

{{define "contact"}}
<section class="section section-contact {{.Background}} {{.TextColor}}">
  <div class="container">
    {{if .Title}}<h2>{{.Title}}</h2>{{end}}
    <div class="contact-columns">
      <div class="contact-details">
        {{if .Content}}<p>{{.Content}}</p>{{end}}
        <ul>
          <li>{{.PhoneIcon}}<span>{{.Phone}}</span></li>
          <li>{{.MailIcon}}<span>{{.Email}}</span></li>
          <li>{{.PinIcon}}<span>{{.Address}}</span></li>
        </ul>
      </div>
      <form class="contact-form" action="#" method="post">
        <input type="text" name="name" placeholder="Your Name">
        <input type="email" name="email" placeholder="Your Email">
        <textarea name="message" rows="4" placeholder="Your Message"></textarea>
        <button type="submit">Send Message</button>
      </form>
    </div>
  </div>
</section>
{{end}}
`

var sectionTmpl = template.Must(template.New("sections").Parse(sectionTemplates))

// 联系区块展示的静态联系方式；表单只是外壳，没有后端端点。
const (
	contactPhone   = "1-800-RENOBOOK"
	contactEmail   = "hello@renobook.com"
	contactAddress = "San Francisco, CA"
)

type sectionView struct {
	Title      string
	Content    string
	ImageURL   string
	Background string
	TextColor  string
	Paragraphs []string
	Features   []featureView
	Phone      string
	Email      string
	Address    string
	PhoneIcon  template.HTML
	MailIcon   template.HTML
	PinIcon    template.HTML
}

type featureView struct {
	Icon        template.HTML
	Title       string
	Description string
}

func styleTokens(sec store.Section) (string, string) {
	background := sec.BackgroundColor
	if background == "" {
		background = "bg-white"
	}
	textColor := sec.TextColor
	if textColor == "" {
		textColor = "text-gray-900"
	}
	return background, textColor
}

// Section expands one section into HTML according to its type tag.
// Unrecognized types render nothing.
func Section(sec store.Section) template.HTML {
	background, textColor := styleTokens(sec)
	view := sectionView{
		Title:      sec.Title,
		Content:    sec.Content,
		ImageURL:   sec.ImageURL,
		Background: background,
		TextColor:  textColor,
	}

	var name string
	switch sec.Type {
	case store.SectionHero:
		name = "hero"
	case store.SectionText:
		name = "text"
		// 换行符是唯一的文本排版规则：一行一个段落。
		view.Paragraphs = strings.Split(sec.Content, "\n")
	case store.SectionFeatures:
		name = "features"
		view.Features = make([]featureView, 0, len(sec.Features))
		for _, item := range sec.Features {
			view.Features = append(view.Features, featureView{
				Icon:        Icon(item.Icon),
				Title:       item.Title,
				Description: item.Description,
			})
		}
	case store.SectionImage:
		name = "image"
	case store.SectionContact:
		name = "contact"
		view.Phone = contactPhone
		view.Email = contactEmail
		view.Address = contactAddress
		view.PhoneIcon = Icon("Phone")
		view.MailIcon = Icon("Mail")
		view.PinIcon = Icon("MapPin")
	default:
		return ""
	}

	var buf bytes.Buffer
	if err := sectionTmpl.ExecuteTemplate(&buf, name, view); err != nil {
		log.Printf("render: section %s: %v", sec.ID, err)
		return ""
	}
	return template.HTML(buf.String())
}

// Sections renders an ordered section list. The sort on the order value is
// stable: duplicate order values keep their prior relative position.
func Sections(sections []store.Section) template.HTML {
	sorted := make([]store.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var out strings.Builder
	for _, sec := range sorted {
		out.WriteString(string(Section(sec)))
	}
	return template.HTML(out.String())
}
