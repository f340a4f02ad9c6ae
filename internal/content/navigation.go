package content

// NavEntry is a top-level navigation entry. Entries with Children render as a
// dropdown and have no Href of their own.
type NavEntry struct {
	Label    string
	Href     string
	Children []Link
}

// Navigation returns the main menu in display order.
func Navigation() []NavEntry {
	return []NavEntry{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Why Choose Us", Href: "/why-choose-us"},
		{Label: "Services", Children: []Link{
			{Label: "Concrete Services", Href: "/services"},
			{Label: "Installations", Href: "/installations"},
			{Label: "Additional Services", Href: "/additional-services"},
		}},
		{Label: "Gallery", Href: "/gallery"},
		{Label: "Blog", Href: "/blog"},
		{Label: "FAQ", Href: "/faq"},
		{Label: "Contact", Href: "/contact"},
	}
}

// LinkColumn is a titled group of footer links.
type LinkColumn struct {
	Title string
	Links []Link
}

// FooterColumns returns the link columns of the site footer.
func FooterColumns() []LinkColumn {
	return []LinkColumn{
		{Title: "Services", Links: []Link{
			{Label: "Flatwork", Href: "/services"},
			{Label: "Stamped Concrete", Href: "/services"},
			{Label: "Driveways", Href: "/installations"},
			{Label: "Patios", Href: "/installations"},
			{Label: "Demolition", Href: "/additional-services"},
			{Label: "Repairs", Href: "/additional-services"},
		}},
		{Title: "Company", Links: []Link{
			{Label: "About Us", Href: "/about"},
			{Label: "Why Choose Us", Href: "/why-choose-us"},
			{Label: "Gallery", Href: "/gallery"},
			{Label: "Blog", Href: "/blog"},
			{Label: "FAQ", Href: "/faq"},
			{Label: "Contact", Href: "/contact"},
		}},
	}
}

// Card is a linked teaser tile.
type Card struct {
	Title       string
	Description string
	Href        string
}

// QuickLinks returns the "Explore Our Services" cards on the contact page.
func QuickLinks() []Card {
	return []Card{
		{Title: "Concrete Services", Description: "Flatwork, stamped, finishes", Href: "/services"},
		{Title: "Installations", Description: "Driveways, patios, sidewalks", Href: "/installations"},
		{Title: "Gallery", Description: "See our completed work", Href: "/gallery"},
	}
}
