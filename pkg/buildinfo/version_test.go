package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if got := String(); !strings.HasPrefix(got, "version: v9.9.9\n") {
		t.Errorf("String() = %q", got)
	}
	if got := Generator(); got != "proofgen v9.9.9" {
		t.Errorf("Generator() = %q", got)
	}
	if got := Template(); !strings.Contains(got, "{{.Name}} v9.9.9") {
		t.Errorf("Template() = %q", got)
	}
}
