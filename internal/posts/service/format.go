package service

import (
	"strings"
	"unicode"

	projectdomain "github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

// DefaultHashtags are used when none of a project's tags survive cleaning.
var DefaultHashtags = []string{"#Innovation", "#Technology", "#ProjectShowcase"}

const (
	demoLabel   = "🚀 Live Demo:"
	githubLabel = "💻 GitHub:"
	blogLabel   = "📝 Read more:"
)

// Hashtags turns free-form tags into hashtags: characters other than ASCII
// letters, digits and spaces are dropped, spaces are removed, empty results
// are skipped.
func Hashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		var b strings.Builder
		for _, r := range tag {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			out = append(out, "#"+b.String())
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultHashtags...)
	}
	return out
}

// TeamCredit describes who built the project, or "" when nobody is named.
func TeamCredit(lead string, members []string) string {
	lead = strings.TrimSpace(lead)

	names := make([]string, 0, len(members))
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			names = append(names, m)
		}
	}

	memberNoun := "team member"
	if len(names) > 1 {
		memberNoun = "team members"
	}
	joined := strings.Join(names, ", ")

	switch {
	case lead != "" && len(names) > 0:
		return "Led by " + lead + " with " + memberNoun + " " + joined
	case lead != "":
		return "Led by " + lead
	case len(names) > 0:
		return "Built by " + memberNoun + " " + joined
	default:
		return ""
	}
}

// Links renders the project's links, one labelled paragraph each.
func Links(p projectdomain.Project) string {
	var parts []string
	for _, l := range []struct{ label, url string }{
		{demoLabel, p.DemoURL},
		{githubLabel, p.GithubURL},
		{blogLabel, p.BlogURL},
	} {
		if u := strings.TrimSpace(l.url); u != "" {
			parts = append(parts, l.label+" "+u)
		}
	}
	return strings.Join(parts, "\n\n")
}
