package markup

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// EnsureURL returns u with an https:// scheme unless it already has an
// http or https scheme. The empty string is returned unchanged.
func EnsureURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// MailtoURL returns a mailto: link for an e-mail address.
func MailtoURL(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// SiteLabel returns a short visible label for a web address: its registrable
// domain ("www.example.co.uk/about" -> "example.co.uk"). It falls back to the
// host when the public suffix cannot be determined.
func SiteLabel(u string) string {
	full := EnsureURL(u)
	if full == "" {
		return ""
	}
	parsed, err := url.Parse(full)
	if err != nil || parsed.Hostname() == "" {
		return strings.TrimSpace(u)
	}
	host := parsed.Hostname()
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// Link returns markup for a hyperlink with an escaped label.
func Link(href, label string) string {
	return `<link href="` + Escape(href) + `">` + Escape(label) + `</link>`
}

// Bold returns markup for bold text with the text escaped.
func Bold(s string) string {
	return "<b>" + Escape(s) + "</b>"
}
