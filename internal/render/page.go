package render

import (
	"bytes"
	"html/template"
	"log"
	"sort"

	"github.com/renobook/internal/store"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
{{if .Favicon}}<link rel="icon" href="{{.Favicon}}">{{end}}
<style>:root{--primary:{{.PrimaryColor}};--secondary:{{.SecondaryColor}}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

const notFoundTemplate = `
<main class="not-found">
  <h1>Page Not Found</h1>
  <p>The page you're looking for doesn't exist.</p>
  <a href="/">Go Home</a>
</main>
`

const homeTemplate = `
<header class="site-header">
  <a class="brand" href="/">{{if .Settings.Logo}}<img src="{{.Settings.Logo}}" alt="{{.Settings.SiteName}}">{{else}}{{.Settings.SiteName}}{{end}}</a>
  <nav>
    {{range .Navigation}}<a href="{{.Href}}">{{.Label}}</a>
    {{end}}
  </nav>
</header>
<section class="home-hero">
  <p class="subtitle">{{.Data.Hero.Subtitle}}</p>
  <h1>{{.Data.Hero.Title}}</h1>
  <p class="lead">{{.Data.Hero.Description}}</p>
  <div class="actions">
    <a class="button primary" href="#laptops">{{.Data.Hero.PrimaryButtonText}}</a>
    <a class="button" href="#process">{{.Data.Hero.SecondaryButtonText}}</a>
  </div>
</section>
<section class="home-benefits">
  {{range .Benefits}}<div class="benefit benefit-{{.Color}}">
    <div class="benefit-icon">{{.IconSVG}}</div>
    <h3>{{.Title}}</h3>
    <p>{{.Description}}</p>
  </div>
  {{end}}
</section>
<section id="laptops" class="home-laptops">
  {{range .Laptops}}<div class="laptop-card{{if .Featured}} featured{{end}}">
    {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}">{{end}}
    <h3>{{.Name}}</h3>
    <p class="specs">{{.Specs}}</p>
    <p class="price">${{printf "%.0f" .Price}} <del>${{printf "%.0f" .OriginalPrice}}</del></p>
    <p class="rating">{{printf "%.1f" .Rating}} / 5</p>
  </div>
  {{end}}
</section>
<section id="process" class="home-process">
  {{range .Process}}<div class="process-step">
    <span class="step-number">{{.Step}}</span>
    <h3>{{.Title}}</h3>
    <p>{{.Description}}</p>
  </div>
  {{end}}
</section>
<section class="home-testimonials">
  {{range .Testimonials}}<blockquote class="testimonial">
    <p>{{.Comment}}</p>
    <footer><span class="initials">{{.Initials}}</span> {{.Name}}{{if .Verified}} <em>Verified</em>{{end}}</footer>
  </blockquote>
  {{end}}
</section>
<section class="home-newsletter">
  <h2>{{.Data.Newsletter.Title}}</h2>
  <p>{{.Data.Newsletter.Description}}</p>
</section>
<footer class="site-footer">
  {{range .Footer}}<div class="footer-section">
    <h4>{{.Title}}</h4>
    <ul>{{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>
  </div>
  {{end}}
  <div class="footer-contact">
    <p>{{.Data.Contact.Phone}}</p>
    <p>{{.Data.Contact.Email}}</p>
    <p>{{.Data.Contact.Address}}</p>
  </div>
  <div class="footer-social">
    {{range $name, $url := .Settings.SocialLinks}}<a href="{{$url}}" rel="noopener">{{$name}}</a>
    {{end}}
  </div>
</footer>
`

var (
	documentTmpl = template.Must(template.New("document").Parse(documentTemplate))
	notFoundTmpl = template.Must(template.New("notfound").Parse(notFoundTemplate))
	homeTmpl     = template.Must(template.New("home").Parse(homeTemplate))
)

type documentView struct {
	Title          string
	Description    string
	Favicon        string
	PrimaryColor   template.CSS
	SecondaryColor template.CSS
	Body           template.HTML
}

func document(title, description string, settings store.Settings, body template.HTML) template.HTML {
	view := documentView{
		Title:          title,
		Description:    description,
		Favicon:        settings.Favicon,
		PrimaryColor:   template.CSS(settings.PrimaryColor),
		SecondaryColor: template.CSS(settings.SecondaryColor),
		Body:           body,
	}
	if view.Title == "" {
		view.Title = settings.SiteName
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, view); err != nil {
		log.Printf("render: document: %v", err)
		return ""
	}
	return template.HTML(buf.String())
}

// Page renders a published page as a full HTML document, with SEO title and
// description falling back to the page title and description.
func Page(page store.Page, settings store.Settings) template.HTML {
	title := page.SEOTitle
	if title == "" {
		title = page.Title
	}
	description := page.SEODescription
	if description == "" {
		description = page.Description
	}
	return document(title, description, settings, Sections(page.Sections))
}

// NotFound renders the fixed not-found view with a link back home.
// Unknown and unpublished slugs share it so draft existence never leaks.
func NotFound(settings store.Settings) template.HTML {
	var buf bytes.Buffer
	if err := notFoundTmpl.Execute(&buf, nil); err != nil {
		log.Printf("render: not found: %v", err)
		return ""
	}
	return document("Page Not Found", "", settings, template.HTML(buf.String()))
}

type benefitView struct {
	store.BenefitItem
	IconSVG template.HTML
}

type homeView struct {
	Data         store.SiteData
	Settings     store.Settings
	Navigation   []store.NavigationItem
	Benefits     []benefitView
	Laptops      []store.Product
	Process      []store.ProcessStep
	Testimonials []store.Testimonial
	Footer       []store.FooterSection
}

// Home renders the public home page from the static site data.
func Home(data store.SiteData, settings store.Settings) template.HTML {
	view := homeView{
		Data:         data,
		Settings:     settings,
		Navigation:   sortedByOrder(data.Navigation, func(n store.NavigationItem) int { return n.Order }),
		Laptops:      sortedByOrder(data.Laptops, func(p store.Product) int { return p.Order }),
		Process:      sortedByOrder(data.Process, func(p store.ProcessStep) int { return p.Order }),
		Testimonials: sortedByOrder(data.Testimonials, func(t store.Testimonial) int { return t.Order }),
		Footer:       sortedByOrder(data.Footer, func(f store.FooterSection) int { return f.Order }),
	}
	for _, benefit := range sortedByOrder(data.Benefits, func(b store.BenefitItem) int { return b.Order }) {
		view.Benefits = append(view.Benefits, benefitView{BenefitItem: benefit, IconSVG: Icon(benefit.Icon)})
	}

	var buf bytes.Buffer
	if err := homeTmpl.Execute(&buf, view); err != nil {
		log.Printf("render: home: %v", err)
		return ""
	}
	return document(settings.SiteName, settings.SiteDescription, settings, template.HTML(buf.String()))
}

func sortedByOrder[T any](items []T, order func(T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return order(out[i]) < order(out[j]) })
	return out
}
