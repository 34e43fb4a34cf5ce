package model

// User is the persisted record. The JSON tags are the on-disk contract of
// users.json and must not change: the hash is stored under "password".
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"password"`
	Created      int64  `json:"created"`
}
