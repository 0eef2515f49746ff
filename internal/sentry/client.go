package sentry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	serrors "github.com/amkisko/sex-cli/internal/errors"
)

// DefaultBaseURL is the hosted Sentry API root. Self-hosted installs
// override it via settings or the Client field.
const DefaultBaseURL = "https://sentry.io/api/0"

// Issue is one tracked error group in a project.
type Issue struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Level     string `json:"level"`
	Culprit   string `json:"culprit"`
	LastSeen  string `json:"lastSeen"`
	Count     int    `json:"count"`
	UserCount int    `json:"userCount"`
}

// ProjectStats holds event counts as (timestamp, count) pairs.
type ProjectStats struct {
	Last24h [][2]int64 `json:"24h"`
	Last30d [][2]int64 `json:"30d"`
}

// Team is a project team membership.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Project describes a remote project.
type Project struct {
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Platform     string        `json:"platform"`
	Status       string        `json:"status"`
	FirstEvent   string        `json:"firstEvent"`
	LastEvent    string        `json:"lastEvent"`
	Stats        *ProjectStats `json:"stats"`
	IsBookmarked bool          `json:"isBookmarked"`
	IsMember     bool          `json:"isMember"`
	HasAccess    bool          `json:"hasAccess"`
	Teams        []Team        `json:"teams"`
}

// Organization is a remote organization the token can see.
type Organization struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// InfoField is one label/value row of a project summary.
type InfoField struct {
	Label string
	Value string
}

// Client talks to the Sentry HTTP API with a bearer token. It performs no
// retries; a failed request surfaces immediately.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	authToken string
}

// NewClient returns a client against the hosted API with no token set.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login sets the bearer token used for subsequent requests.
func (c *Client) Login(token string) {
	c.authToken = token
}

// Authenticated reports whether a token has been set.
func (c *Client) Authenticated() bool {
	return c.authToken != ""
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(path string, query url.Values, out interface{}) error {
	if c.authToken == "" {
		return serrors.ErrNotAuthenticated
	}

	requestURL := c.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ListOrganizations returns the organizations visible to the token.
func (c *Client) ListOrganizations() ([]Organization, error) {
	var orgs []Organization
	if err := c.get("/organizations/", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListProjects returns every project of the organization, sorted by
// display name (case-insensitive).
func (c *Client) ListProjects(orgSlug string) ([]Project, error) {
	query := url.Values{}
	query.Set("all_projects", "1")
	query.Set("per_page", "100")

	var projects []Project
	if err := c.get("/organizations/"+orgSlug+"/projects/", query, &projects); err != nil {
		return nil, err
	}

	sort.Slice(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
	return projects, nil
}

// ListIssues returns the project's unresolved issues from the last 14
// days, newest first.
func (c *Client) ListIssues(orgSlug, projectSlug string) ([]Issue, error) {
	query := url.Values{}
	query.Set("statsPeriod", "14d")
	query.Set("query", "is:unresolved")
	query.Set("sort", "date")

	var issues []Issue
	if err := c.get("/projects/"+orgSlug+"/"+projectSlug+"/issues/", query, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// ProjectInfo returns a label/value summary of the project including
// 24-hour and 30-day event totals when stats are available.
func (c *Client) ProjectInfo(orgSlug, projectSlug string) ([]InfoField, error) {
	query := url.Values{}
	query.Set("statsPeriod", "24h")

	var project Project
	if err := c.get("/projects/"+orgSlug+"/"+projectSlug+"/", query, &project); err != nil {
		return nil, err
	}

	info := []InfoField{
		{"Name", project.Name},
		{"Slug", project.Slug},
	}
	if project.Platform != "" {
		info = append(info, InfoField{"Platform", project.Platform})
	}
	if project.Status != "" {
		info = append(info, InfoField{"Status", project.Status})
	}
	if project.FirstEvent != "" {
		info = append(info, InfoField{"First Event", project.FirstEvent})
	}
	if project.LastEvent != "" {
		info = append(info, InfoField{"Last Event", project.LastEvent})
	}
	if len(project.Teams) > 0 {
		names := make([]string, len(project.Teams))
		for i, team := range project.Teams {
			names[i] = team.Name
		}
		info = append(info, InfoField{"Teams", strings.Join(names, ", ")})
	}

	if project.Stats != nil {
		var total24h, total30d int64
		for _, point := range project.Stats.Last24h {
			total24h += point[1]
		}
		for _, point := range project.Stats.Last30d {
			total30d += point[1]
		}
		info = append(info,
			InfoField{"Events (24h)", fmt.Sprintf("%d", total24h)},
			InfoField{"Events (30d)", fmt.Sprintf("%d", total30d)},
			InfoField{"Daily Average (30d)", fmt.Sprintf("%.1f", float64(total30d)/30.0)},
		)
	}
	return info, nil
}
