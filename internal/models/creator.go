package models

// CreatorWork is one published work on a third-party creator's page.
type CreatorWork struct {
	Title  string `json:"title"`
	Cover  string `json:"cover"`
	Status string `json:"status"`
	Detail string `json:"detail"`
	Link   string `json:"link,omitempty"`
}

// CreatorProfile is the read-only projection of a third party's profile.
// It is never persisted by this layer; every view re-resolves it from the
// local fixture table and/or the remote lookup endpoint.
type CreatorProfile struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Tags       string        `json:"tags"`
	Bio        string        `json:"bio"`
	Avatar     string        `json:"avatar"`
	Background string        `json:"background"`
	Counts     Counts        `json:"counts"`
	Works      []CreatorWork `json:"works"`
}
