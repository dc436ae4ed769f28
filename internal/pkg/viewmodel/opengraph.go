package viewmodel

// OpenGraph holds the meta tags of a rendered page
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
}
