package errors

import (
	"strings"
	"testing"
)

func TestValidateProblem(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr Code
	}{
		{"sentence", "Sales team loses track of inbound leads", ""},
		{"markup is allowed", `<script>alert("x")</script> & friends`, ""},
		{"multi-line", "line one\nline two\ttabbed", ""},
		{"unicode", "Équipe perd des prospects 🚀", ""},
		{"empty", "", ErrCodeMissingProblem},
		{"whitespace only", "   \n\t ", ErrCodeMissingProblem},
		{"control chars", "bad\x00input \x1b fast", ""},
		{"very long", strings.Repeat("a", MaxProblemLength+1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProblem(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateProblem() error = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantErr) {
				t.Errorf("ValidateProblem() error = %v, want code %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProblemMessage(t *testing.T) {
	if got := UserMessage(ValidateProblem(" ")); got != "Type one sentence first." {
		t.Errorf("message = %q", got)
	}
}

func TestCheckRequestSize(t *testing.T) {
	tests := []struct {
		name       string
		systemType string
		problem    string
		wantErr    bool
	}{
		{"typical", "Lead generation pipeline", "Reps lose leads", false},
		{"empty", "", "", false},
		{"problem at limit", "", strings.Repeat("é", MaxProblemLength), false},
		{"problem too long", "", strings.Repeat("a", MaxProblemLength+1), true},
		{"system type at limit", strings.Repeat("é", MaxSystemTypeLength), "x", false},
		{"system type too long", strings.Repeat("x", MaxSystemTypeLength+1), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequestSize(tt.systemType, tt.problem)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRequestSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInputTooLong) {
				t.Errorf("CheckRequestSize() code = %v", GetCode(err))
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "README.md", false},
		{"nested", "assets/system-image.svg", false},
		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../secret", true},
		{"hidden traversal", "assets/../../x", true},
		{"backslash", "assets\\x", true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v", tt.path, GetCode(err))
			}
		})
	}
}
