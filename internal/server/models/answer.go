package models

// Answer is a stored answer referencing an existing question.
type Answer struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	QuestionID int64  `json:"question_id"`
	AccountID  int64  `json:"-"`
}

// NewAnswer carries the client-supplied fields of an answer that has not
// been persisted yet.
type NewAnswer struct {
	Content    string `json:"content"`
	QuestionID int64  `json:"question_id"`
}
