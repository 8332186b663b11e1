package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job carries exactly one salary mode: either FixedSalary, or the
// SalaryFrom/SalaryTo pair. The other mode stays nil.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary *int64    `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64    `json:"salaryFrom,omitempty"`
	SalaryTo    *int64    `json:"salaryTo,omitempty"`
	Expired     bool      `json:"expired"`
	JobPostedOn time.Time `json:"jobPostedOn"`
	PostedBy    uuid.UUID `json:"postedBy"`
}
