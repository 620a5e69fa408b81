package navigation

// Breadcrumb is a single navigational link rendered in the page's breadcrumb
// trail. Trails are ordered from the site home towards the current page.
type Breadcrumb struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Home returns the default trail prefix pointing at the storefront root.
func Home(siteName, siteURL string) []Breadcrumb {
	title := siteName
	if title == "" {
		title = "Home"
	}
	return []Breadcrumb{{Title: title, URL: siteURL}}
}
