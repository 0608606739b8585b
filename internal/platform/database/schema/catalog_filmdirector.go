package schema

// FilmDirectorTable represents the 'catalog.filmdirector' table
type FilmDirectorTable struct {
	Table      string
	FilmID     string
	DirectorID string
}

// FilmDirector is the schema definition for catalog.filmdirector
var FilmDirector = FilmDirectorTable{
	Table:      "catalog.filmdirector",
	FilmID:     "filmid",
	DirectorID: "directorid",
}
