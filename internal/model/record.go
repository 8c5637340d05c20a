package model

// Record is a single post as served by the remote source.
// ID is assigned upstream and never changes client-side.
type Record struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
