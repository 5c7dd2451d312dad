package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/proofgen/pkg/errors"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     int
		wantText string
	}{
		{"nil", nil, ExitOK, ""},
		{"cancelled", fmt.Errorf("render: %w", context.Canceled), ExitCancelled, ""},
		{"missing problem", errors.New(errors.ErrCodeMissingProblem, errors.MissingProblemMessage), ExitUsage, "Type one sentence first."},
		{"internal", errors.New(errors.ErrCodeInternal, "disk full"), ExitFailure, "INTERNAL_ERROR: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := Report(&buf, tt.err); got != tt.want {
				t.Errorf("Report() = %d, want %d", got, tt.want)
			}
			out := buf.String()
			if tt.wantText == "" && out != "" {
				t.Errorf("unexpected output %q", out)
			}
			if !strings.Contains(out, tt.wantText) {
				t.Errorf("output %q missing %q", out, tt.wantText)
			}
		})
	}
}

func TestReportValidationHidesCode(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", "gif"))
	if strings.Contains(buf.String(), "INVALID_FORMAT") {
		t.Errorf("validation output shows the code: %q", buf.String())
	}
}
