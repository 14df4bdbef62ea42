package entity

import "time"

type Poll struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Question        string       `json:"question"`
	Active          bool         `json:"active"`
	ActiveUntil     time.Time    `json:"active_until"`
	MultipleAnswers bool         `json:"multiple_answers"`
	Answers         []PollAnswer `json:"answers"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Open reports whether the poll accepts votes at the given instant.
func (p *Poll) Open(now time.Time) bool {
	return p.Active && now.Before(p.ActiveUntil)
}

type PollAnswer struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Name   string `json:"name"`
	Order  int    `json:"order"`
	Votes  int    `json:"votes"`
}

// PostPoll attaches a poll to a post. Removing it never touches either side.
type PostPoll struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	PollID    string    `json:"poll_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PollResults struct {
	PollID     string       `json:"poll_id"`
	Question   string       `json:"question"`
	TotalVotes int          `json:"total_votes"`
	Answers    []PollAnswer `json:"answers"`
}
