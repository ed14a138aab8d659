package models

// MergeRequest is a created merge request as returned by the API
type MergeRequest struct {
	ID     int    `json:"id"`
	IID    int    `json:"iid"`
	WebURL string `json:"web_url"`
}
