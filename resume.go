package vitae

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/resume.yaml content/themes.yaml
var content embed.FS

// Resume is the content of a curriculum vitae.
type Resume struct {
	// Output is the path of the generated PDF.
	Output string `yaml:"output"`

	Name    string  `yaml:"name"`
	Title   string  `yaml:"title"`
	Tagline string  `yaml:"tagline"`
	Contact Contact `yaml:"contact"`
	Summary string  `yaml:"summary"`

	Skills         []SkillGroup    `yaml:"skills"`
	Education      Education       `yaml:"education"`
	Certifications []Certification `yaml:"certifications"`
	Projects       []Project       `yaml:"projects"`
	Achievements   []string        `yaml:"achievements"`
}

// Contact holds contact details. Web addresses may omit the scheme.
type Contact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Website  string `yaml:"website"`
	Location string `yaml:"location"`
}

// SkillGroup is a named category of skills.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Education describes a degree or diploma.
type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Location    string   `yaml:"location"`
	Status      string   `yaml:"status"`
	Highlights  []string `yaml:"highlights"`
}

// Meta returns the institution, location and status joined by commas,
// skipping empty parts.
func (e Education) Meta() string {
	return joinNonEmpty(", ", e.Institution, e.Location, e.Status)
}

// Certification is a certificate and its issuing organization.
type Certification struct {
	Name string `yaml:"name"`
	Org  string `yaml:"org"`
}

// String returns "Name — Org", or just the name when there is no org.
func (c Certification) String() string {
	return joinNonEmpty(" — ", c.Name, c.Org)
}

// Project is a portfolio entry.
type Project struct {
	Title        string   `yaml:"title"`
	Tech         string   `yaml:"tech"`
	Achievements []string `yaml:"achievements"`
}

// LoadResume decodes a resume from YAML and validates it.
func LoadResume(r io.Reader) (Resume, error) {
	var res Resume
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&res); err != nil {
		return Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	if err := res.Validate(); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// DefaultResume returns the resume bundled with the module.
func DefaultResume() (Resume, error) {
	data, err := content.ReadFile("content/resume.yaml")
	if err != nil {
		return Resume{}, err
	}
	return LoadResume(bytes.NewReader(data))
}

// Validate checks the fields the layout cannot do without.
func (r Resume) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("resume has no name")
	}
	if strings.TrimSpace(r.Output) == "" {
		return fmt.Errorf("resume has no output path")
	}
	for i, g := range r.Skills {
		if strings.TrimSpace(g.Category) == "" {
			return fmt.Errorf("skill group %d has no category", i)
		}
	}
	for i, p := range r.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d has no title", i)
		}
	}
	return nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
