package content

// Service is a concrete finish or technique offered by the company.
type Service struct {
	ID          string
	Title       string
	Description string
	Details     []string
}

// Installation is a kind of project the company builds.
type Installation struct {
	ID            string
	Title         string
	Subtitle      string
	Description   string
	Features      []string
	FinishOptions []string
}

// AdditionalService is a non-installation offering such as demolition.
type AdditionalService struct {
	ID          string
	Title       string
	Description string
	ListTitle   string
	Items       []string
	NotesTitle  string
	Notes       []string
	CTA         string
}

// HomeServices returns the four service teasers on the home page.
func HomeServices() []Card {
	return []Card{
		{Title: "Flatwork", Description: "Expert flat concrete surfaces for foundations, floors, and more.", Href: "/services"},
		{Title: "Stamped Concrete", Description: "Beautiful decorative patterns that mimic stone, brick, and tile.", Href: "/services"},
		{Title: "Driveways", Description: "Durable, attractive driveways built to withstand Pacific Northwest weather.", Href: "/installations"},
		{Title: "Patios", Description: "Custom outdoor living spaces designed for beauty and function.", Href: "/installations"},
	}
}

// Services returns the concrete services page entries.
func Services() []Service {
	return []Service{
		{
			ID:          "flatwork",
			Title:       "Flatwork",
			Description: "The foundation of quality concrete work. Our flatwork services create level, durable surfaces for a wide range of applications.",
			Details:     []string{"Foundation slabs", "Garage floors", "Basement floors", "Warehouse floors", "Commercial slabs"},
		},
		{
			ID:          "stamped",
			Title:       "Stamped Concrete",
			Description: "Add elegance and character with decorative stamped patterns. We can replicate the look of natural stone, brick, tile, and more.",
			Details:     []string{"Natural stone patterns", "Brick patterns", "Slate textures", "Custom designs", "Color integration"},
		},
		{
			ID:          "broom",
			Title:       "Broom Finish",
			Description: "A classic, slip-resistant finish perfect for outdoor applications. The textured surface provides excellent traction in all conditions.",
			Details:     []string{"Driveways", "Sidewalks", "Pool decks", "Patios", "Commercial walkways"},
		},
		{
			ID:          "exposed",
			Title:       "Exposed Aggregate",
			Description: "Reveal the natural beauty of stone aggregates for a unique, textured finish that's both decorative and durable.",
			Details:     []string{"Decorative driveways", "Patios", "Pool surrounds", "Walkways", "Accent borders"},
		},
		{
			ID:          "hard-trowel",
			Title:       "Hard Trowel Floors",
			Description: "Ultra-smooth, dense concrete surfaces ideal for industrial and commercial applications requiring a polished appearance.",
			Details:     []string{"Warehouse floors", "Industrial facilities", "Commercial spaces", "Garage floors", "Retail environments"},
		},
		{
			ID:          "cast",
			Title:       "Cast Finish",
			Description: "Precision-formed concrete for architectural elements and structural components requiring exacting standards.",
			Details:     []string{"Architectural elements", "Structural walls", "Retaining walls", "Foundation walls", "Custom forms"},
		},
		{
			ID:          "top-cast",
			Title:       "Top Cast / Top Finish",
			Description: "Premium surface finishing for visible concrete elements, ensuring a smooth, professional appearance.",
			Details:     []string{"Countertops", "Decorative surfaces", "Visible structural elements", "Architectural details", "Custom finishes"},
		},
	}
}

// Installations returns the installations page entries.
func Installations() []Installation {
	return []Installation{
		{
			ID:            "driveways",
			Title:         "Driveways",
			Subtitle:      "First Impressions That Last",
			Description:   "Your driveway is often the first thing visitors see. We create durable, attractive driveways designed to withstand the Pacific Northwest's demanding weather conditions while enhancing your home's curb appeal.",
			Features:      []string{"Proper grading for drainage", "Reinforced construction", "Multiple finish options", "Expansion joints for longevity", "Edge work and borders", "Sealing options available"},
			FinishOptions: []string{"Broom Finish", "Stamped", "Exposed Aggregate", "Colored Concrete"},
		},
		{
			ID:            "sidewalks",
			Title:         "Sidewalks",
			Subtitle:      "Safe & Beautiful Pathways",
			Description:   "From front walkways to connecting paths throughout your property, our sidewalk installations combine safety with aesthetics. Proper slope and texture ensure safe passage in any weather.",
			Features:      []string{"ADA-compliant options", "Non-slip textures", "Proper drainage slope", "Custom widths available", "Decorative borders", "Integration with landscaping"},
			FinishOptions: []string{"Broom Finish", "Stamped", "Exposed Aggregate", "Colored Concrete"},
		},
		{
			ID:            "patios",
			Title:         "Patios",
			Subtitle:      "Outdoor Living Spaces",
			Description:   "Extend your living space outdoors with a custom concrete patio. Whether you envision a cozy retreat or an expansive entertainment area, we bring your outdoor dreams to life.",
			Features:      []string{"Custom shapes and sizes", "Decorative options", "Built-in features available", "Fire pit integration", "Multi-level designs", "Furniture-friendly finishes"},
			FinishOptions: []string{"Stamped Patterns", "Exposed Aggregate", "Colored Concrete", "Textured Finish"},
		},
		{
			ID:            "steps",
			Title:         "Steps & Stairs",
			Subtitle:      "Functional & Elegant",
			Description:   "Concrete steps provide safe, long-lasting access to your home or throughout your property. We build steps that meet code requirements while complementing your home's architecture.",
			Features:      []string{"Code-compliant rise and run", "Non-slip surfaces", "Integrated with walkways", "Matching finishes available", "Handrail provisions", "Lighting channel options"},
			FinishOptions: []string{"Broom Finish", "Stamped Treads", "Exposed Aggregate", "Smooth Finish"},
		},
	}
}

// AdditionalServices returns demolition and repair.
func AdditionalServices() []AdditionalService {
	return []AdditionalService{
		{
			ID:          "demolition",
			Title:       "Demolition",
			Description: "When old concrete needs to go, we handle the entire demolition process safely and efficiently. Our team removes existing concrete to prepare for your new installation or to simply clear the space.",
			ListTitle:   "What We Demolish",
			Items:       []string{"Old driveways", "Damaged sidewalks", "Cracked patios", "Foundation sections", "Garage floors", "Steps and porches", "Retaining walls", "Commercial slabs"},
			NotesTitle:  "Our Demolition Process",
			Notes:       []string{"Site assessment and planning", "Safe, controlled demolition", "Complete debris removal", "Site cleanup and preparation"},
			CTA:         "Get a Demolition Quote",
		},
		{
			ID:          "repairs",
			Title:       "Repairs",
			Description: "Not all concrete needs replacement. Our repair services restore damaged concrete to like-new condition, saving you money while extending the life of your existing surfaces.",
			ListTitle:   "Common Repairs",
			Items:       []string{"Crack repair", "Spalling fix", "Settling correction", "Surface restoration", "Joint repair", "Edge repair", "Patching", "Resurfacing"},
			NotesTitle:  "When to Repair vs. Replace",
			Notes:       []string{"Minor cracks and surface damage often repairable", "Major settling may require replacement", "We always recommend the most cost-effective solution"},
			CTA:         "Schedule a Repair Assessment",
		},
	}
}

// AdditionalServicePromises returns the "Why Choose Blackstone" blurbs on the
// additional services page.
func AdditionalServicePromises() []Feature {
	return []Feature{
		{Title: "Safety First", Description: "Proper equipment, trained crew, and adherence to safety protocols protect your property and our team."},
		{Title: "Clean Results", Description: "We don't just demolish, we clean up completely. Your site will be ready for the next phase."},
		{Title: "Honest Assessments", Description: "We'll tell you if repair is possible or if replacement is the better long-term investment."},
	}
}
