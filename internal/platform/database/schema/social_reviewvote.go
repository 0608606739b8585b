package schema

// ReviewVoteTable represents the 'social.reviewvote' table
type ReviewVoteTable struct {
	Table    string
	ReviewID string
	UserID   string
	IsUseful string
}

// ReviewVote is the schema definition for social.reviewvote
var ReviewVote = ReviewVoteTable{
	Table:    "social.reviewvote",
	ReviewID: "reviewid",
	UserID:   "userid",
	IsUseful: "isuseful",
}
