package vitae

import (
	"strings"
	"testing"
)

func TestDefaultResume(t *testing.T) {
	res, err := DefaultResume()
	if err != nil {
		t.Fatalf("DefaultResume() error: %v", err)
	}
	if res.Name != "MPHO MATSEKA" {
		t.Errorf("Name = %q", res.Name)
	}
	if len(res.Projects) != 3 {
		t.Errorf("got %d projects, want 3", len(res.Projects))
	}
	if len(res.Certifications) != 6 {
		t.Errorf("got %d certifications, want 6", len(res.Certifications))
	}
	if res.Skills[0].Category != "Languages & Frameworks" {
		t.Errorf("skills out of order: %q first", res.Skills[0].Category)
	}
	if !strings.HasSuffix(res.Output, ".pdf") {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestLoadResumeErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "name: A\noutput: a.pdf\nnickname: B\n"},
		{"no name", "output: a.pdf\n"},
		{"no output", "name: A\n"},
		{"empty category", "name: A\noutput: a.pdf\nskills:\n  - items: [Go]\n"},
		{"untitled project", "name: A\noutput: a.pdf\nprojects:\n  - tech: Go\n"},
		{"not yaml", "name: [A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadResume(strings.NewReader(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResumeHelpers(t *testing.T) {
	edu := Education{Institution: "VUT", Status: "Final Year"}
	if got := edu.Meta(); got != "VUT, Final Year" {
		t.Errorf("Meta() = %q", got)
	}

	tests := []struct {
		cert Certification
		want string
	}{
		{Certification{Name: "CCNA", Org: "Cisco"}, "CCNA — Cisco"},
		{Certification{Name: "CCNA"}, "CCNA"},
	}
	for _, tt := range tests {
		if got := tt.cert.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
