package schema

// RatingTable represents the 'catalog.rating' table (MPA-style age ratings)
type RatingTable struct {
	Table string
	ID    string
	Name  string
}

// Rating is the schema definition for catalog.rating
var Rating = RatingTable{
	Table: "catalog.rating",
	ID:    "id",
	Name:  "name",
}
