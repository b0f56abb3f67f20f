package dto

// StatCard is one statistics tile. Icon is always a member of the closed
// icon set; unrecognised CMS values have already been normalised.
type StatCard struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Hero carries the homepage hero copy.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// UpdateCard is one "latest updates" entry.
type UpdateCard struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

// LeaderCard is one featured leadership message on the homepage.
type LeaderCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Year       string `json:"year,omitempty"`
	Message    string `json:"message"`
}

// HomePageResponse is the assembled homepage view model.
type HomePageResponse struct {
	Hero    Hero         `json:"hero"`
	Stats   []StatCard   `json:"stats"`
	Updates []UpdateCard `json:"updates"`
	Leaders []LeaderCard `json:"leaders"`
}
