// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package genre serves the film genre reference data (Comedy, Drama, ...).
//
// Genres are effectively static: they are seeded by migration and only read
// at runtime, which makes them the ideal tenant for the reference snapshot
// cache.
package genre

// Genre is a reference entity attached to films many-to-many.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
