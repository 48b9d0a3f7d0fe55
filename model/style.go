package model

import (
	"fmt"
	"strings"
)

// TextAlignment represents text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment converts a configuration value to a TextAlignment.
// The empty string means left alignment.
func ParseAlignment(s string) (TextAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Role is the semantic purpose of a piece of text. Styles are keyed by role
// so one layout can be rendered with different visual themes.
type Role int

const (
	RoleBody Role = iota
	RoleName
	RoleTitle
	RoleTagline
	RoleContact
	RoleSection
	RoleSubhead
	RoleMeta
	RoleBullet
	RoleFooter
	RoleSummary
)

var roleNames = map[Role]string{
	RoleBody:    "body",
	RoleName:    "name",
	RoleTitle:   "title",
	RoleTagline: "tagline",
	RoleContact: "contact",
	RoleSection: "section",
	RoleSubhead: "subhead",
	RoleMeta:    "meta",
	RoleBullet:  "bullet",
	RoleFooter:  "footer",
	RoleSummary: "summary",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole returns the role with the given name.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return RoleBody, fmt.Errorf("unknown text role %q", s)
}

// TextStyle holds the visual attributes applied to a block of text.
// Sizes and distances are in points.
type TextStyle struct {
	Family      string // Helvetica, Times or Courier
	Bold        bool
	Italic      bool
	Size        float64
	Leading     float64 // Baseline-to-baseline distance; 0 means 1.2 × Size
	Color       Color
	Alignment   TextAlignment
	LeftIndent  float64
	SpaceBefore float64
	SpaceAfter  float64
}

// DefaultTextStyle is the body style used when a style sheet has none.
var DefaultTextStyle = TextStyle{
	Family:     "Helvetica",
	Size:       10,
	Leading:    14,
	Color:      Color{R: 0x1A, G: 0x1A, B: 0x1A},
	SpaceAfter: 4,
}

// EffectiveLeading returns the leading, defaulting to 1.2 × Size.
func (s TextStyle) EffectiveLeading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Size * 1.2
}

// Validate checks that the style can be measured.
func (s TextStyle) Validate() error {
	if !(s.Size > 0) {
		return fmt.Errorf("font size must be positive, got %g", s.Size)
	}
	if !(s.Leading >= 0) {
		return fmt.Errorf("leading must not be negative, got %g", s.Leading)
	}
	if !(s.LeftIndent >= 0 && s.SpaceBefore >= 0 && s.SpaceAfter >= 0) {
		return fmt.Errorf("indent and spacing must not be negative")
	}
	return nil
}

// StyleSheet maps text roles to styles.
type StyleSheet map[Role]TextStyle

// Style returns the style for role, falling back to the body style and then
// to DefaultTextStyle.
func (ss StyleSheet) Style(role Role) TextStyle {
	if s, ok := ss[role]; ok {
		return s
	}
	if s, ok := ss[RoleBody]; ok {
		return s
	}
	return DefaultTextStyle
}

// Validate checks every style in the sheet.
func (ss StyleSheet) Validate() error {
	for role, s := range ss {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("style %s: %w", role, err)
		}
	}
	return nil
}
