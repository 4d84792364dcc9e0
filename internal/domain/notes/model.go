package notes

import (
	"time"

	"github.com/google/uuid"
)

// Note is a saved processing result owned by one user.
type Note struct {
	ID             uuid.UUID `json:"id"`
	UserID         int64     `json:"userId"`
	RawText        string    `json:"rawText"`
	BeautifiedText string    `json:"beautifiedText"`
	SummaryText    string    `json:"summaryText"`
	Takeaways      []string  `json:"takeaways"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SaveRequest is the save payload. A nil Takeaways means the field was absent.
type SaveRequest struct {
	RawText        string   `json:"rawText"`
	BeautifiedText string   `json:"beautifiedText"`
	SummaryText    string   `json:"summaryText"`
	Takeaways      []string `json:"takeaways"`
}
