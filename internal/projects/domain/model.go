package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Project is a showcase record maintained outside this service.
// Records without a title are never returned to callers.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeamLead    string   `json:"team_lead"`
	TeamMembers []string `json:"team_members"`
	DemoURL     string   `json:"demo_url"`
	GithubURL   string   `json:"github_url"`
	BlogURL     string   `json:"blog_url"`
	Tags        []string `json:"tags"`
	LastUpdated string   `json:"last_updated"`
	StartDate   string   `json:"start_date"`
	ScrapedAt   string   `json:"scraped_at"`
}

// FromDocument decodes a stored document. ok is false when the record has no title.
func FromDocument(id string, data map[string]interface{}) (p Project, ok bool) {
	p = Project{
		ID:          id,
		Title:       strings.TrimSpace(stringField(data["title"])),
		Description: stringField(data["description"]),
		TeamLead:    stringField(data["team_lead"]),
		TeamMembers: stringList(data["team_members"]),
		DemoURL:     stringField(data["demo_url"]),
		GithubURL:   stringField(data["github_url"]),
		BlogURL:     stringField(data["blog_url"]),
		Tags:        stringList(data["tags"]),
		LastUpdated: stringField(data["last_updated"]),
		StartDate:   stringField(data["start_date"]),
		ScrapedAt:   stringField(data["scraped_at"]),
	}
	return p, p.Title != ""
}

// SortByLastUpdated orders projects by LastUpdated descending, comparing the
// raw strings. Equal values keep their input order.
func SortByLastUpdated(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].LastUpdated > projects[j].LastUpdated
	})
}

func stringField(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func stringList(v interface{}) []string {
	out := []string{}
	switch t := v.(type) {
	case []string:
		out = append(out, t...)
	case []interface{}:
		for _, item := range t {
			if s := stringField(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
