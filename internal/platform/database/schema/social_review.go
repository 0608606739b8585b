package schema

// ReviewTable represents the 'social.review' table
type ReviewTable struct {
	Table      string
	ID         string
	Content    string
	IsPositive string
	UserID     string
	FilmID     string
	CreatedAt  string
	UpdatedAt  string
}

// Review is the schema definition for social.review
var Review = ReviewTable{
	Table:      "social.review",
	ID:         "id",
	Content:    "content",
	IsPositive: "ispositive",
	UserID:     "userid",
	FilmID:     "filmid",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
