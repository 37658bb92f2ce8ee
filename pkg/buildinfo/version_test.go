package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Get().Version; got != "v1.2.3" {
		t.Errorf("Get().Version = %q, want v1.2.3", got)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} ") {
		t.Errorf("Template() = %q, want {{.Name}} prefix", tmpl)
	}
	if !strings.Contains(String(), Commit) {
		t.Errorf("String() = %q, missing commit", String())
	}
}
