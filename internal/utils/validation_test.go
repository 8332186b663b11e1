package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekwell-dev/job-board/backend/internal/apperr"
)

func ptr(v int64) *int64 { return &v }

func TestValidateJobSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixed   *int64
		from    *int64
		to      *int64
		wantMsg string
	}{
		{name: "fixed only", fixed: ptr(50000)},
		{name: "range only", from: ptr(40000), to: ptr(60000)},
		{name: "neither", wantMsg: "Please provide fixed salary or salary range!"},
		{name: "both", fixed: ptr(50000), from: ptr(40000), to: ptr(60000), wantMsg: "Cannot enter both fixed salary and salary range together!"},
		{name: "fixed plus partial range", fixed: ptr(50000), from: ptr(40000), wantMsg: "Cannot enter both fixed salary and salary range together!"},
		{name: "half a range", from: ptr(40000), wantMsg: "Please provide fixed salary or salary range!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateJobSalary(tt.fixed, tt.from, tt.to)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Status)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}
