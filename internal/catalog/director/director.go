// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package director manages the film director reference data.
//
// Unlike genres and ratings, directors are mutable at runtime, so every
// mutation here invalidates the directors snapshot in the reference cache.
package director

// Director is a reference entity attached to films many-to-many.
type Director struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
