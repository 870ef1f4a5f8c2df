package domain

// User is a member of the social graph. IDs are assigned sequentially from 1.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
