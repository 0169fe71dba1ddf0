package render

import (
	"fmt"
	"html/template"
)

// 图标取自固定枚举，按名称解析。未知名称回退到默认图标而不是报错，
// 这样编辑器里手滑写错的图标名不会影响页面渲染。

const defaultIconName = "Star"

var iconPaths = map[string]string{
	"Shield":    "M12 2l8 4v6c0 5-3.5 9-8 10-4.5-1-8-5-8-10V6l8-4z",
	"Leaf":      "M5 21c0-9 4-15 14-16-1 10-7 14-14 16zm0 0c3-4 6-6 10-8",
	"Heart":     "M12 21l-8-8a5.5 5.5 0 018-8 5.5 5.5 0 018 8l-8 8z",
	"Star":      "M12 2l3 6.6 7 .9-5.2 4.8L18.2 21 12 17.3 5.8 21l1.4-6.7L2 9.5l7-.9L12 2z",
	"Award":     "M12 15a6 6 0 100-12 6 6 0 000 12zm-4 2l-1 7 5-3 5 3-1-7",
	"Zap":       "M13 2L3 14h7l-1 8 10-12h-7l1-8z",
	"Check":     "M20 6L9 17l-5-5",
	"Truck":     "M1 7h14v10H1zM15 11h4l4 4v2h-8z",
	"Laptop":    "M3 5h18v11H3zM1 19h22",
	"Recycle":   "M7 19H4l3-5m5 5h6l-2-4M9 5l3-3 3 3m-3-3v10",
	"Users":     "M9 11a4 4 0 100-8 4 4 0 000 8zm8 10v-2a4 4 0 00-3-3.9M1 21v-2a4 4 0 014-4h4a4 4 0 014 4v2",
	"Wrench":    "M14.7 6.3a5 5 0 00-6.6 6.6L3 18l3 3 5.1-5.1a5 5 0 006.6-6.6L14 12l-2-2 2.7-3.7z",
	"Clock":     "M12 22a10 10 0 100-20 10 10 0 000 20zm0-14v6l4 2",
	"Globe":     "M12 22a10 10 0 100-20 10 10 0 000 20zM2 12h20M12 2a15 15 0 010 20",
	"ThumbsUp":  "M7 10v12H3V10h4zm0 0l4-8a2 2 0 012 2v4h6a2 2 0 012 2.3l-1.4 7A2 2 0 0117.7 19H7",
	"Sparkles":  "M12 3l1.5 4.5L18 9l-4.5 1.5L12 15l-1.5-4.5L6 9l4.5-1.5L12 3zM19 15l.8 2.2L22 18l-2.2.8L19 21l-.8-2.2L16 18l2.2-.8L19 15z",
	"Battery":   "M1 8h18v8H1zM23 11v2",
	"Cpu":       "M7 7h10v10H7zM4 10h3m10 0h3M4 14h3m10 0h3M10 4v3m4-3v3m-4 10v3m4-3v3",
	"Package":   "M21 8l-9-5-9 5v8l9 5 9-5V8zm-9-5v18M3 8l9 5 9-5",
	"Lock":      "M5 11h14v10H5zM8 11V7a4 4 0 018 0v4",
	"Mail":      "M2 5h20v14H2zm0 0l10 8L22 5",
	"Phone":     "M5 3h4l2 5-3 2a13 13 0 006 6l2-3 5 2v4a2 2 0 01-2 2A17 17 0 013 5a2 2 0 012-2z",
	"MapPin":    "M12 22s7-6.3 7-12a7 7 0 10-14 0c0 5.7 7 12 7 12zm0-9a3 3 0 100-6 3 3 0 000 6z",
	"DollarSign": "M12 1v22M17 5H9.5a3.5 3.5 0 000 7h5a3.5 3.5 0 010 7H6",
}

// Icon renders the named icon as inline SVG, falling back to the default
// icon when the name is not part of the enumeration.
func Icon(name string) template.HTML {
	path, ok := iconPaths[name]
	if !ok {
		path = iconPaths[defaultIconName]
	}
	svg := fmt.Sprintf(
		`<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="%s"/></svg>`,
		path,
	)
	return template.HTML(svg)
}

// KnownIcon reports whether name belongs to the icon enumeration.
func KnownIcon(name string) bool {
	_, ok := iconPaths[name]
	return ok
}
