package models

// Question is a stored question owned by exactly one account.
type Question struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
	AccountID int64    `json:"-"`
}

// NewQuestion carries the client-supplied fields of a question that has not
// been persisted yet.
type NewQuestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}
