package schema

// GenreTable represents the 'catalog.genre' table
type GenreTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for catalog.genre
var Genre = GenreTable{
	Table: "catalog.genre",
	ID:    "id",
	Name:  "name",
}
