package dto

// ActivityCard is one "what we do" entry on the about page.
type ActivityCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutPageResponse is the assembled about-page view model.
type AboutPageResponse struct {
	Mission    string         `json:"mission"`
	Vision     string         `json:"vision"`
	Community  string         `json:"community"`
	Activities []ActivityCard `json:"activities"`
}
