package models

import "time"

// Work is an entry in the signed-in user's published-works list, written by
// the publish flow and shown on their own profile page.
type Work struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Series    string    `json:"series"`
	Title     string    `json:"title"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"created_at"`
}
