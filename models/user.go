package models

import "time"

// User is a registered account. PasswordHash and SecretKey never leave the
// server: JSON marshalling only exposes the username, while BSON tags map the
// full document stored in the users/accounts collection.
type User struct {
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	SecretKey    string    `json:"-" bson:"secret_key"`
	CreatedAt    time.Time `json:"-" bson:"created_at"`
}

// Credentials is the payload of the register and authorise endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
