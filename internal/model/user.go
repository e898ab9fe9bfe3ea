package model

// User is a row of the users table.
//
// ID is zero until the user is saved for the first time.
type User struct {
	ID    int64  `db:"id" json:"id"`
	FName string `db:"fname" json:"fname"`
	LName string `db:"lname" json:"lname"`
}

// IsNew reports whether the user has never been persisted.
func (u *User) IsNew() bool {
	return u.ID == 0
}
