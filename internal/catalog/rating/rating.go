// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package rating serves the MPA-style age rating reference data (G, PG, ...).
package rating

// Rating is the single optional age rating attached to a film.
type Rating struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
