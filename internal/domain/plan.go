package domain

import (
	"time"

	"github.com/google/uuid"

	"career-path-finder/internal/model"
)

// Plan is one generated career plan, persisted best-effort for history.
type Plan struct {
	ID            uuid.UUID          `json:"id"`
	Profile       *model.UserProfile `json:"profile"`
	HTMLPlan      string             `json:"html_plan"`
	ResumeLocator string             `json:"resume_locator,omitempty"`
	PDFLocator    string             `json:"pdf_locator,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
