package repository

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Limit
}

// ContentStats summarises a content table for the dashboard and maintenance status.
type ContentStats struct {
	Total        int64 `json:"total"`
	Published    int64 `json:"published"`
	WithCover    int64 `json:"with_cover"`
	WithoutCover int64 `json:"without_cover"`
}
