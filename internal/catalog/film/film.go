// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package film is the core of the Kinora catalogue.

It owns the film aggregate and the four read paths with real logic behind
them: bulk relational enrichment, popularity ranking, collaborative
recommendations, and multi-field search.

Core Responsibility:

  - Aggregation: Reassembles films from five-plus normalized tables in a
    bounded number of queries, never one query per film.
  - Ranking: Orders films by the count of distinct users who liked them,
    under optional genre and release-year filters.
  - Recommendation: Single-neighbor collaborative filtering over shared likes.
  - Search: Case- and accent-insensitive substring search over titles and
    director names, ranked by popularity.
*/
package film

import (
	"time"

	"github.com/taibuivan/kinora/pkg/date"
)

// # Core Entities

// Film is the central aggregate of the Kinora domain.
//
// A film is "raw" when only its scalar columns are populated, and a "film
// aggregate" once [Aggregator.Enrich] has resolved all four relation kinds.
// On an enriched film, Genres, Directors, and Likes are never nil: absence
// of rows yields an empty slice. A missing MPA rating leaves Rating nil.
type Film struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate date.Date `json:"release_date"`
	Duration    int       `json:"duration"` // minutes
	Rating      *Rating   `json:"rating,omitempty"`

	// Relation sets, populated exclusively by the bulk aggregator.
	Genres    []Genre    `json:"genres"`
	Directors []Director `json:"directors"`
	Likes     []int      `json:"likes"` // user IDs

	// # Junction IDs (Input only)
	RatingID    *int  `json:"rating_id,omitempty"`
	GenreIDs    []int `json:"genre_ids,omitempty"`
	DirectorIDs []int `json:"director_ids,omitempty"`
}

// Genre is a genre reference attached to a [Film].
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Director is a director reference attached to a [Film].
type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Rating is the single optional MPA-style rating of a [Film].
type Rating struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// # Domain Rules

// EarliestReleaseDate is the date of the first public film screening.
// Films cannot be released before cinema existed.
var EarliestReleaseDate = date.New(1895, time.December, 28)

// # Search Fields

// Search field identifiers accepted by the "by" query parameter.
const (
	SearchByTitle    = "title"
	SearchByDirector = "director"
)

// DirectorSort values accepted by the director film listing.
const (
	SortByYear  = "year"
	SortByLikes = "likes"
)
