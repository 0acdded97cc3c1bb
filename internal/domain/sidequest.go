package domain

import "time"

// SidequestStatus tracks an assignment's lifecycle
type SidequestStatus string

// Sidequest statuses
const (
	SidequestDraft  SidequestStatus = "draft"
	SidequestActive SidequestStatus = "active"
	SidequestClosed SidequestStatus = "closed"
)

// Sidequest is an assignment with a submission and grading workflow.
// Only the EXP consequence of grading is modeled here; file handling and
// rendering belong to collaborators.
type Sidequest struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DueDate       time.Time       `json:"due_date"`
	ExpReward     int             `json:"exp_reward"`
	LateExpReward int             `json:"late_exp_reward"`
	Status        SidequestStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SidequestSubmission is a player's submission for a sidequest.
// One submission per player per sidequest.
type SidequestSubmission struct {
	ID          int64     `json:"id"`
	PlayerID    string    `json:"player_id"`
	SidequestID int64     `json:"sidequest_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Grade       *int      `json:"grade,omitempty"`
	ExpEarned   int       `json:"exp_earned"`
	Feedback    string    `json:"feedback,omitempty"`
}

// IsLate reports whether the submission arrived after the sidequest due date
func (s *SidequestSubmission) IsLate(q *Sidequest) bool {
	return s.SubmittedAt.After(q.DueDate)
}
