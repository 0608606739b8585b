package schema

// DirectorTable represents the 'catalog.director' table
type DirectorTable struct {
	Table string
	ID    string
	Name  string
}

// Director is the schema definition for catalog.director
var Director = DirectorTable{
	Table: "catalog.director",
	ID:    "id",
	Name:  "name",
}
