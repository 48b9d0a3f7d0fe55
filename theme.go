package vitae

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/vitae/model"
)

// ErrUnknownTheme is returned when no built-in theme has the requested name.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultTheme is the theme used when none is selected.
const DefaultTheme = "professional"

// RuleStyle describes a horizontal rule.
type RuleStyle struct {
	Thickness float64
	Color     model.Color
}

// Theme is a complete visual configuration for the two-column layout.
// Themes differ only in values; every theme is rendered by the same code.
type Theme struct {
	Name string
	Page model.Page

	// LeftRatio is the share of the content width, after the gap, given to
	// the left column.
	LeftRatio float64
	ColumnGap float64

	// HeaderGap separates the header block from the header rule;
	// HeaderRuleGap separates the rule from the top of the columns.
	HeaderGap     float64
	HeaderRuleGap float64

	// SectionGap is added after the last block of every section.
	SectionGap float64

	// FooterOffset is the distance from the footer rule, which sits on the
	// bottom margin, down to the top of the footer text.
	FooterOffset float64

	Bullet       string
	BulletIndent float64
	ItemGap      float64

	HeaderRule RuleStyle
	FooterRule RuleStyle

	Styles model.StyleSheet
}

// Validate checks that the theme can lay out a page.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	if err := t.Page.Validate(); err != nil {
		return fmt.Errorf("theme %s: %w", t.Name, err)
	}
	if !(t.LeftRatio > 0 && t.LeftRatio < 1) {
		return fmt.Errorf("theme %s: left_ratio must be between 0 and 1, got %g", t.Name, t.LeftRatio)
	}
	for name, v := range map[string]float64{
		"column_gap":      t.ColumnGap,
		"header_gap":      t.HeaderGap,
		"header_rule_gap": t.HeaderRuleGap,
		"section_gap":     t.SectionGap,
		"footer_offset":   t.FooterOffset,
		"bullet_indent":   t.BulletIndent,
		"item_gap":        t.ItemGap,
	} {
		if !(v >= 0) {
			return fmt.Errorf("theme %s: %s must not be negative, got %g", t.Name, name, v)
		}
	}
	if err := t.Styles.Validate(); err != nil {
		return fmt.Errorf("theme %s: %w", t.Name, err)
	}
	return nil
}

// Style returns the theme's style for a role.
func (t Theme) Style(role model.Role) model.TextStyle {
	return t.Styles.Style(role)
}

// themeSpec is the YAML form of a Theme.
type themeSpec struct {
	Name          string               `yaml:"name"`
	Page          model.Page           `yaml:"page"`
	LeftRatio     float64              `yaml:"left_ratio"`
	ColumnGap     float64              `yaml:"column_gap"`
	HeaderGap     float64              `yaml:"header_gap"`
	HeaderRuleGap float64              `yaml:"header_rule_gap"`
	SectionGap    float64              `yaml:"section_gap"`
	FooterOffset  float64              `yaml:"footer_offset"`
	Bullet        string               `yaml:"bullet"`
	BulletIndent  float64              `yaml:"bullet_indent"`
	ItemGap       float64              `yaml:"item_gap"`
	Rules         map[string]ruleSpec  `yaml:"rules"`
	Styles        map[string]styleSpec `yaml:"styles"`
}

type ruleSpec struct {
	Thickness float64 `yaml:"thickness"`
	Color     string  `yaml:"color"`
}

type styleSpec struct {
	Family      string  `yaml:"family"`
	Bold        bool    `yaml:"bold"`
	Italic      bool    `yaml:"italic"`
	Size        float64 `yaml:"size"`
	Leading     float64 `yaml:"leading"`
	Color       string  `yaml:"color"`
	Alignment   string  `yaml:"alignment"`
	LeftIndent  float64 `yaml:"left_indent"`
	SpaceBefore float64 `yaml:"space_before"`
	SpaceAfter  float64 `yaml:"space_after"`
}

func (s styleSpec) toStyle() (model.TextStyle, error) {
	style := model.TextStyle{
		Family:      s.Family,
		Bold:        s.Bold,
		Italic:      s.Italic,
		Size:        s.Size,
		Leading:     s.Leading,
		LeftIndent:  s.LeftIndent,
		SpaceBefore: s.SpaceBefore,
		SpaceAfter:  s.SpaceAfter,
	}
	if s.Color != "" {
		c, err := model.ParseColor(s.Color)
		if err != nil {
			return model.TextStyle{}, err
		}
		style.Color = c
	}
	align, err := model.ParseAlignment(s.Alignment)
	if err != nil {
		return model.TextStyle{}, err
	}
	style.Alignment = align
	return style, nil
}

func (r ruleSpec) toRule() (RuleStyle, error) {
	rule := RuleStyle{Thickness: r.Thickness}
	if r.Color != "" {
		c, err := model.ParseColor(r.Color)
		if err != nil {
			return RuleStyle{}, err
		}
		rule.Color = c
	}
	return rule, nil
}

func (s themeSpec) toTheme() (Theme, error) {
	t := Theme{
		Name:          s.Name,
		Page:          s.Page,
		LeftRatio:     s.LeftRatio,
		ColumnGap:     s.ColumnGap,
		HeaderGap:     s.HeaderGap,
		HeaderRuleGap: s.HeaderRuleGap,
		SectionGap:    s.SectionGap,
		FooterOffset:  s.FooterOffset,
		Bullet:        s.Bullet,
		BulletIndent:  s.BulletIndent,
		ItemGap:       s.ItemGap,
		Styles:        make(model.StyleSheet, len(s.Styles)),
	}

	for name, spec := range s.Styles {
		role, err := model.ParseRole(name)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", s.Name, err)
		}
		style, err := spec.toStyle()
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: style %s: %w", s.Name, name, err)
		}
		t.Styles[role] = style
	}

	for name, spec := range s.Rules {
		rule, err := spec.toRule()
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: rule %s: %w", s.Name, name, err)
		}
		switch name {
		case "header":
			t.HeaderRule = rule
		case "footer":
			t.FooterRule = rule
		default:
			return Theme{}, fmt.Errorf("theme %s: unknown rule %q", s.Name, name)
		}
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadThemes decodes a YAML list of themes.
func LoadThemes(r io.Reader) (map[string]Theme, error) {
	var specs []themeSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("decode themes: %w", err)
	}

	themes := make(map[string]Theme, len(specs))
	for _, spec := range specs {
		t, err := spec.toTheme()
		if err != nil {
			return nil, err
		}
		if _, dup := themes[t.Name]; dup {
			return nil, fmt.Errorf("duplicate theme %q", t.Name)
		}
		themes[t.Name] = t
	}
	return themes, nil
}

var builtin = sync.OnceValues(func() (map[string]Theme, error) {
	data, err := content.ReadFile("content/themes.yaml")
	if err != nil {
		return nil, err
	}
	return LoadThemes(bytes.NewReader(data))
})

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, error) {
	themes, err := builtin()
	if err != nil {
		return Theme{}, err
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	t.Styles = maps.Clone(t.Styles)
	return t, nil
}

// ThemeNames lists the built-in themes in alphabetical order.
func ThemeNames() ([]string, error) {
	themes, err := builtin()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
