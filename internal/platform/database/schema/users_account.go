package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table    string
	ID       string
	Email    string
	Login    string
	Name     string
	Birthday string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:    "users.account",
	ID:       "id",
	Email:    "email",
	Login:    "login",
	Name:     "name",
	Birthday: "birthday",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.Login, t.Name, t.Birthday}
}
