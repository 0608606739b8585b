package schema

// FriendshipTable represents the 'users.friendship' table.
// Rows are one-directional: (userid, friendid) means userid follows friendid.
type FriendshipTable struct {
	Table     string
	UserID    string
	FriendID  string
	CreatedAt string
}

// Friendship is the schema definition for users.friendship
var Friendship = FriendshipTable{
	Table:     "users.friendship",
	UserID:    "userid",
	FriendID:  "friendid",
	CreatedAt: "createdat",
}
