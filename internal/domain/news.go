package domain

// NewsPost Model
type NewsPost struct {
	ID       string        `json:"id"`        // Unique across the news collection
	Title    string        `json:"title"`     // Headline, searched case-insensitively
	Category SportCategory `json:"category"`  // Sport the article covers
	Content  string        `json:"content"`   // Article body, input to the summary gateway
	ImageURL string        `json:"image_url"` // Hero image
	Date     string        `json:"date"`      // YYYY-MM-DD
	Author   string        `json:"author"`    // Byline
	Comments []Comment     `json:"comments"`  // Newest first
}

// Comment Model
type Comment struct {
	ID   string `json:"id"`   // Unique within the parent post
	User string `json:"user"` // Display name of the author
	Text string `json:"text"` // Comment body
	Date string `json:"date"` // YYYY-MM-DD
}

// HasComment reports whether a comment with the given id is already attached to the post
func (p NewsPost) HasComment(id string) bool {
	for _, c := range p.Comments {
		if c.ID == id {
			return true
		}
	}
	return false
}
