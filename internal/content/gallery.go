package content

import "github.com/blackstone-contractors/website/internal/gallery"

// GalleryItems returns the completed projects in display order.
func GalleryItems() []gallery.Item {
	return []gallery.Item{
		{ID: 1, Category: "Driveways", Title: "Modern Broom Finish Driveway", Location: "Puyallup, WA"},
		{ID: 2, Category: "Patios", Title: "Stamped Stone Patio", Location: "Orting, WA"},
		{ID: 3, Category: "Stamped", Title: "Decorative Stamped Walkway", Location: "Tacoma, WA"},
		{ID: 4, Category: "Driveways", Title: "Exposed Aggregate Driveway", Location: "Sumner, WA"},
		{ID: 5, Category: "Sidewalks", Title: "Residential Sidewalk System", Location: "Bonney Lake, WA"},
		{ID: 6, Category: "Commercial", Title: "Commercial Parking Area", Location: "Kent, WA"},
		{ID: 7, Category: "Patios", Title: "Backyard Entertainment Patio", Location: "Auburn, WA"},
		{ID: 8, Category: "Stamped", Title: "Stamped Concrete Steps", Location: "Federal Way, WA"},
		{ID: 9, Category: "Driveways", Title: "Custom Colored Driveway", Location: "Renton, WA"},
		{ID: 10, Category: "Commercial", Title: "Warehouse Floor Installation", Location: "Fife, WA"},
		{ID: 11, Category: "Patios", Title: "Pool Deck & Patio", Location: "Lake Tapps, WA"},
		{ID: 12, Category: "Sidewalks", Title: "ADA-Compliant Walkway", Location: "University Place, WA"},
	}
}

// Catalog builds the gallery catalog from GalleryItems.
func Catalog() *gallery.Catalog {
	return gallery.MustCatalog(GalleryItems())
}
