package utils

import (
	"github.com/seekwell-dev/job-board/backend/internal/apperr"
)

// ValidateJobSalary enforces the single-salary-mode rule: either a fixed
// salary, or a complete from/to range. Never both, never neither.
func ValidateJobSalary(fixed, from, to *int64) error {
	hasFixed := fixed != nil
	hasRange := from != nil && to != nil

	if hasFixed && (from != nil || to != nil) {
		return apperr.BadRequest("Cannot enter both fixed salary and salary range together!")
	}

	if !hasFixed && !hasRange {
		return apperr.BadRequest("Please provide fixed salary or salary range!")
	}

	return nil
}
