package models

// User represents a registered user in the tracker
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}
