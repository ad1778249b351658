package domain

// Service is a catalog entry describing a bookable salon service. Inquiries
// reference services by name only; no referential integrity is enforced.
type Service struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular"`
}

// GalleryItem is a catalog entry for the gallery page.
type GalleryItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
}

// Testimonial is a static client review shown on the home page.
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Avatar  string `json:"avatar"`
}
