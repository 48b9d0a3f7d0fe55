package vitae

import (
	"fmt"
	"strings"

	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/markup"
	"github.com/tsawler/vitae/model"
)

// composer turns resume content into layout entries for one theme.
type composer struct {
	res   Resume
	theme Theme
}

func (c composer) para(role model.Role, text string) layout.Entry {
	style := c.theme.Style(role)
	return layout.Entry{Block: layout.NewParagraph(text, style), Gap: style.SpaceAfter}
}

func (c composer) bullets(items []string) layout.Entry {
	var escaped []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			escaped = append(escaped, markup.Escape(it))
		}
	}
	style := c.theme.Style(model.RoleBullet)
	return layout.Entry{
		Block: &layout.List{
			Items:  escaped,
			Style:  style,
			Bullet: c.theme.Bullet,
			Indent: c.theme.BulletIndent,
			Gap:    c.theme.ItemGap,
		},
		Gap: style.SpaceAfter,
	}
}

// section prepends a heading to body and adds the section gap after it.
func (c composer) section(title string, body []layout.Entry) []layout.Entry {
	if len(body) == 0 {
		return nil
	}
	entries := append([]layout.Entry{c.para(model.RoleSection, markup.Escape(title))}, body...)
	entries[len(entries)-1].Gap += c.theme.SectionGap
	return entries
}

// header is the stacked name, title and tagline.
func (c composer) header() *layout.Stack {
	entries := []layout.Entry{c.para(model.RoleName, markup.Escape(c.res.Name))}
	if c.res.Title != "" {
		entries = append(entries, c.para(model.RoleTitle, markup.Escape(c.res.Title)))
	}
	if c.res.Tagline != "" {
		entries = append(entries, c.para(model.RoleTagline, markup.Escape(c.res.Tagline)))
	}
	entries[len(entries)-1].Gap = 0
	return &layout.Stack{Entries: entries}
}

func (c composer) contact() []layout.Entry {
	ct := c.res.Contact
	var lines []string
	if ct.Email != "" {
		lines = append(lines, markup.Link(markup.MailtoURL(ct.Email), ct.Email))
	}
	if ct.Phone != "" {
		lines = append(lines, markup.Escape(ct.Phone))
	}
	if u := markup.EnsureURL(ct.LinkedIn); u != "" {
		lines = append(lines, markup.Bold("LinkedIn:")+" "+markup.Link(u, strings.TrimPrefix(ct.LinkedIn, "www.")))
	}
	if u := markup.EnsureURL(ct.GitHub); u != "" {
		lines = append(lines, markup.Bold("GitHub:")+" "+markup.Link(u, strings.TrimPrefix(ct.GitHub, "www.")))
	}
	if u := markup.EnsureURL(ct.Website); u != "" {
		lines = append(lines, markup.Bold("Website:")+" "+markup.Link(u, markup.SiteLabel(ct.Website)))
	}
	if ct.Location != "" {
		lines = append(lines, markup.Escape(ct.Location))
	}

	var body []layout.Entry
	for _, l := range lines {
		body = append(body, c.para(model.RoleContact, l))
	}
	return c.section("Contact", body)
}

func (c composer) skills() []layout.Entry {
	var body []layout.Entry
	for _, g := range c.res.Skills {
		text := markup.Bold(g.Category+":") + " " + markup.Escape(strings.Join(g.Items, ", "))
		body = append(body, c.para(model.RoleBody, text))
	}
	return c.section("Technical Skills", body)
}

func (c composer) certifications() []layout.Entry {
	var items []string
	for _, cert := range c.res.Certifications {
		items = append(items, cert.String())
	}
	if len(items) == 0 {
		return nil
	}
	return c.section("Certifications", []layout.Entry{c.bullets(items)})
}

func (c composer) summary() []layout.Entry {
	if strings.TrimSpace(c.res.Summary) == "" {
		return nil
	}
	return c.section("Professional Summary", []layout.Entry{c.para(model.RoleSummary, markup.Escape(c.res.Summary))})
}

func (c composer) projects() []layout.Entry {
	var body []layout.Entry
	for _, p := range c.res.Projects {
		body = append(body, c.para(model.RoleSubhead, markup.Escape(p.Title)))
		if p.Tech != "" {
			body = append(body, c.para(model.RoleMeta, markup.Escape(p.Tech)))
		}
		if len(p.Achievements) > 0 {
			body = append(body, c.bullets(p.Achievements))
		}
	}
	return c.section("Projects", body)
}

func (c composer) education() []layout.Entry {
	edu := c.res.Education
	if edu.Degree == "" {
		return nil
	}
	body := []layout.Entry{c.para(model.RoleSubhead, markup.Escape(edu.Degree))}
	if meta := edu.Meta(); meta != "" {
		body = append(body, c.para(model.RoleMeta, markup.Escape(meta)))
	}
	if len(edu.Highlights) > 0 {
		body = append(body, c.bullets(edu.Highlights))
	}
	return c.section("Education", body)
}

func (c composer) achievements() []layout.Entry {
	if len(c.res.Achievements) == 0 {
		return nil
	}
	return c.section("Achievements", []layout.Entry{c.bullets(c.res.Achievements)})
}

func (c composer) leftColumn() []layout.Entry {
	var entries []layout.Entry
	entries = append(entries, c.contact()...)
	entries = append(entries, c.skills()...)
	entries = append(entries, c.certifications()...)
	return entries
}

func (c composer) rightColumn() []layout.Entry {
	var entries []layout.Entry
	entries = append(entries, c.summary()...)
	entries = append(entries, c.projects()...)
	entries = append(entries, c.education()...)
	entries = append(entries, c.achievements()...)
	return entries
}

func (c composer) footer() layout.Block {
	text := fmt.Sprintf("%s • Page 1", c.res.Name)
	return layout.NewParagraph(markup.Escape(text), c.theme.Style(model.RoleFooter))
}
