package schema

// FilmGenreTable represents the 'catalog.filmgenre' table
type FilmGenreTable struct {
	Table   string
	FilmID  string
	GenreID string
}

// FilmGenre is the schema definition for catalog.filmgenre
var FilmGenre = FilmGenreTable{
	Table:   "catalog.filmgenre",
	FilmID:  "filmid",
	GenreID: "genreid",
}
