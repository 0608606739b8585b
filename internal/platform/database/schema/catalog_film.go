package schema

// FilmTable represents the 'catalog.film' table
type FilmTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	ReleaseDate string
	Duration    string
	RatingID    string
}

// Film is the schema definition for catalog.film
var Film = FilmTable{
	Table:       "catalog.film",
	ID:          "id",
	Title:       "title",
	Description: "description",
	ReleaseDate: "releasedate",
	Duration:    "duration",
	RatingID:    "ratingid",
}

// Columns returns all standard column names
func (t FilmTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.ReleaseDate, t.Duration, t.RatingID}
}
