package models

// Category groups info cards under a named icon in the navigation menu.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"` // font-awesome class, e.g. "fa-wrench"
}

// Display modes for an info card.
const (
	DisplayIcon  = "icon"
	DisplayImage = "image"
)

// InfoCard is a categorized link card. Image holds either an external URL or an
// inline base64 data URL for uploaded art.
type InfoCard struct {
	ID          int    `json:"id"`
	CategoryID  int    `json:"category_id"`
	Title       string `json:"title"`
	DisplayType string `json:"display_type"` // icon | image
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link"`
}
