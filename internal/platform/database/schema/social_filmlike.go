package schema

// FilmLikeTable represents the 'social.filmlike' table
type FilmLikeTable struct {
	Table     string
	FilmID    string
	UserID    string
	CreatedAt string
}

// FilmLike is the schema definition for social.filmlike
var FilmLike = FilmLikeTable{
	Table:     "social.filmlike",
	FilmID:    "filmid",
	UserID:    "userid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t FilmLikeTable) Columns() []string {
	return []string{t.FilmID, t.UserID, t.CreatedAt}
}
