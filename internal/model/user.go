package model

// User is a row of the users table.
//
// Password holds whatever the caller stored; hashing is done by the service layer.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

// NewUser is the input of a user insert.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
