package store

import "time"

var sampleTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// DefaultSettings returns the built-in site settings.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "RenoBook",
		SiteDescription: "Premium refurbished laptops with quality you can trust",
		PrimaryColor:    "#10b981",
		SecondaryColor:  "#1f2937",
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com/renobook",
			"twitter":   "https://twitter.com/renobook",
			"instagram": "https://instagram.com/renobook",
			"linkedin":  "https://linkedin.com/company/renobook",
		},
	}
}

// SamplePages returns the built-in demo pages used when no snapshot exists.
func SamplePages() []Page {
	return []Page{
		{
			ID:             "page-about",
			Slug:           "about",
			Title:          "About RenoBook",
			Description:    "Learn about our mission to provide quality refurbished laptops",
			IsPublished:    true,
			CreatedAt:      sampleTime,
			UpdatedAt:      sampleTime,
			SEOTitle:       "About RenoBook - Premium Refurbished Laptops",
			SEODescription: "Discover RenoBook's commitment to quality, sustainability, and customer satisfaction in the refurbished laptop market.",
			Sections: []Section{
				{
					ID:              "about-hero",
					Type:            SectionHero,
					Title:           "About RenoBook",
					Content:         "We're passionate about giving premium laptops a second life while making technology accessible to everyone.",
					BackgroundColor: "bg-gradient-to-br from-gray-900 to-gray-800",
					TextColor:       "text-white",
					Order:           1,
				},
				{
					ID:              "about-story",
					Type:            SectionText,
					Title:           "Our Story",
					Content:         "Founded in 2020, RenoBook emerged from a simple belief: quality technology shouldn't be wasteful or unaffordable. Our team of certified technicians carefully selects, tests, and refurbishes each laptop to meet the highest standards.\nWe've helped thousands of customers find their perfect laptop while reducing electronic waste by over 50,000 devices. Every purchase supports our mission of sustainable technology and environmental responsibility.",
					BackgroundColor: "bg-white",
					TextColor:       "text-gray-900",
					Order:           2,
				},
				{
					ID:              "about-mission",
					Type:            SectionFeatures,
					Title:           "Our Mission",
					Content:         "Three core values drive everything we do",
					BackgroundColor: "bg-gray-50",
					TextColor:       "text-gray-900",
					Order:           3,
					Features: []FeatureItem{
						{Icon: "Shield", Title: "Quality First", Description: "Every laptop undergoes our rigorous 47-point inspection process"},
						{Icon: "Leaf", Title: "Sustainability", Description: "Reducing e-waste while extending the life of premium devices"},
						{Icon: "Heart", Title: "Customer Care", Description: "Comprehensive warranties and dedicated support for every purchase"},
					},
				},
			},
		},
		{
			ID:          "page-warranty",
			Slug:        "warranty",
			Title:       "Warranty & Support",
			Description: "Comprehensive warranty coverage and support for your refurbished laptop",
			IsPublished: true,
			CreatedAt:   sampleTime,
			UpdatedAt:   sampleTime,
			Sections: []Section{
				{
					ID:              "warranty-hero",
					Type:            SectionHero,
					Title:           "Warranty & Support",
					Content:         "Your peace of mind is our priority. Every RenoBook laptop comes with comprehensive warranty coverage.",
					BackgroundColor: "bg-gradient-to-br from-emerald-900 to-emerald-800",
					TextColor:       "text-white",
					Order:           1,
				},
				{
					ID:              "warranty-details",
					Type:            SectionText,
					Title:           "What's Covered",
					Content:         "Every RenoBook laptop includes a 12-month hardware warranty covering all internal components, with an optional extension to 24 months.\nBattery health is guaranteed at 80% capacity or better on delivery, and our support team responds to every request within one business day.",
					BackgroundColor: "bg-white",
					TextColor:       "text-gray-900",
					Order:           2,
				},
				{
					ID:              "warranty-contact",
					Type:            SectionContact,
					Title:           "Get In Touch",
					Content:         "Questions about your coverage? Our support team is here to help.",
					BackgroundColor: "bg-gray-50",
					TextColor:       "text-gray-900",
					Order:           3,
				},
			},
		},
	}
}

// DefaultSiteData returns the built-in home page reference data.
func DefaultSiteData() SiteData {
	return SiteData{
		Navigation: []NavigationItem{
			{ID: "nav-home", Label: "Home", Href: "/", Order: 1},
			{ID: "nav-laptops", Label: "Laptops", Href: "/#laptops", Order: 2},
			{ID: "nav-about", Label: "About", Href: "/about", Order: 3},
			{ID: "nav-warranty", Label: "Warranty", Href: "/warranty", Order: 4},
		},
		Hero: HeroContent{
			Title:               "Premium Laptops, Renewed",
			Subtitle:            "Quality you can trust",
			Description:         "Certified refurbished laptops with full warranty coverage at up to 40% off retail price.",
			PrimaryButtonText:   "Shop Laptops",
			SecondaryButtonText: "How It Works",
		},
		Benefits: []BenefitItem{
			{ID: "benefit-inspection", Icon: "Shield", Title: "47-Point Inspection", Description: "Every device is tested, graded and certified before sale", Color: "emerald", Order: 1},
			{ID: "benefit-warranty", Icon: "Award", Title: "12-Month Warranty", Description: "Full hardware coverage with optional extension", Color: "blue", Order: 2},
			{ID: "benefit-planet", Icon: "Leaf", Title: "Better For The Planet", Description: "Each refurbished laptop keeps e-waste out of landfill", Color: "green", Order: 3},
		},
		Laptops: []Product{
			{ID: "laptop-air", Name: "UltraBook Air 13", Specs: "i5 / 16GB / 512GB SSD", Price: 649, OriginalPrice: 1099, Rating: 4.8, Color: "silver", Featured: true, Order: 1},
			{ID: "laptop-pro", Name: "ProBook 15", Specs: "i7 / 32GB / 1TB SSD", Price: 899, OriginalPrice: 1499, Rating: 4.7, Color: "gray", Featured: true, Order: 2},
			{ID: "laptop-go", Name: "TravelMate Go", Specs: "Ryzen 5 / 8GB / 256GB SSD", Price: 429, OriginalPrice: 749, Rating: 4.5, Color: "black", Featured: false, Order: 3},
		},
		Process: []ProcessStep{
			{ID: "process-source", Step: 1, Title: "Source", Description: "We buy off-lease business laptops from trusted partners", Order: 1},
			{ID: "process-inspect", Step: 2, Title: "Inspect", Description: "Certified technicians run our 47-point inspection", Order: 2},
			{ID: "process-renew", Step: 3, Title: "Renew", Description: "Worn parts are replaced and every device is deep cleaned", Order: 3},
			{ID: "process-ship", Step: 4, Title: "Ship", Description: "Your laptop arrives ready to use, with warranty included", Order: 4},
		},
		Testimonials: []Testimonial{
			{ID: "testimonial-sarah", Name: "Sarah M.", Initials: "SM", Rating: 5, Comment: "Looks and runs like new. I saved over $400 compared to retail.", Verified: true, Color: "emerald", Order: 1},
			{ID: "testimonial-james", Name: "James K.", Initials: "JK", Rating: 5, Comment: "The inspection report gave me real confidence. Battery was at 96% health.", Verified: true, Color: "blue", Order: 2},
			{ID: "testimonial-priya", Name: "Priya R.", Initials: "PR", Rating: 4, Comment: "Fast shipping and great support when I had a question about the warranty.", Verified: false, Color: "purple", Order: 3},
		},
		Footer: []FooterSection{
			{ID: "footer-shop", Title: "Shop", Order: 1, Links: []FooterLink{
				{ID: "footer-laptops", Label: "All Laptops", Href: "/#laptops"},
				{ID: "footer-deals", Label: "Deals", Href: "/#deals"},
			}},
			{ID: "footer-company", Title: "Company", Order: 2, Links: []FooterLink{
				{ID: "footer-about", Label: "About Us", Href: "/about"},
				{ID: "footer-warranty", Label: "Warranty", Href: "/warranty"},
			}},
		},
		Contact: ContactInfo{
			Phone:   "1-800-RENOBOOK",
			Email:   "hello@renobook.com",
			Address: "San Francisco, CA",
		},
		Newsletter: Newsletter{
			Title:       "Stay in the loop",
			Description: "New arrivals and exclusive deals, once a week. No spam.",
		},
	}
}

// DefaultState assembles the full built-in sample state.
func DefaultState() State {
	return State{
		Data:     DefaultSiteData(),
		Pages:    SamplePages(),
		Settings: DefaultSettings(),
	}
}
