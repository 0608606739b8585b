// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review handles written film reviews and their usefulness score.

A review carries a verdict (positive or negative) plus free-form content.
Other users vote a review useful or useless; the running score ranks reviews
within a film, most useful first.

# Architecture

  - Entities: Review.
  - Votes: One vote per user per review; switching sides replaces the vote.
  - Feed: Review creation, update, and deletion land in the author's feed.
*/
package review

// Review is a verdict on a film written by one user.
//
// Useful is derived storage-side: useful votes minus useless votes. A fresh
// review starts at zero.
type Review struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	IsPositive *bool  `json:"is_positive"`
	UserID     int    `json:"user_id"`
	FilmID     int    `json:"film_id"`
	Useful     int    `json:"useful"`
}
