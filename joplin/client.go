// Package joplin provides a Joplin Data API implementation of
// dlm.NotebookService. Notes are exported as markdown into a single
// notebook, merged with any existing note of the same title.
package joplin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/utrumsit/dlm"
)

// DefaultTimeout is the default timeout for API requests. Joplin runs
// locally so requests should be fast.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements dlm.NotebookService at compile time.
var _ dlm.NotebookService = (*Client)(nil)

// Client talks to the Joplin Data API. The API requires the clipper
// service to be enabled in the Joplin desktop application.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	token        string
	notebookName string
	now          func() time.Time
	hostname     func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(j *Client) {
		j.httpClient = c
	}
}

// NewClient creates a Client from the configuration. Returns EINVALID
// when no API token is configured.
func NewClient(cfg *dlm.Config) (*Client, error) {
	if cfg.JoplinToken == "" {
		return nil, dlm.Errorf(dlm.EINVALID, "joplin token is not configured, set joplin_token in config.yml")
	}

	c := &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		apiURL:       strings.TrimRight(cfg.JoplinAPIURL, "/"),
		token:        cfg.JoplinToken,
		notebookName: cfg.NotebookName,
		now:          time.Now,
		hostname: func() string {
			h, _ := os.Hostname()
			return strings.SplitN(h, ".", 2)[0]
		},
	}
	return c, nil
}

// CreateOrUpdateNote exports the note to the configured notebook. When a
// note with the same title already exists the bodies are merged: identical
// content is skipped, a superset replaces a subset, and unrelated content
// is appended under a merge heading.
func (c *Client) CreateOrUpdateNote(ctx context.Context, note *dlm.Note) error {
	if note.Title == "" {
		return dlm.Errorf(dlm.EINVALID, "note title is required")
	}

	notebookID, err := c.notebookID(ctx)
	if err != nil {
		return err
	}

	noteID, err := c.findNote(ctx, note.Title)
	if err != nil {
		return err
	}

	if noteID == "" {
		noteID, err = c.createNote(ctx, notebookID, note.Title, note.Body)
	} else {
		err = c.mergeNote(ctx, noteID, note.Body)
	}
	if err != nil {
		return err
	}

	if len(note.Tags) > 0 {
		return c.setTags(ctx, noteID, note.Tags)
	}
	return nil
}

// mergeNote updates an existing note, preserving content that is not part
// of the new body.
func (c *Client) mergeNote(ctx context.Context, noteID, body string) error {
	existing, err := c.noteBody(ctx, noteID)
	if err != nil {
		return err
	}

	newBody := strings.TrimSpace(body)
	oldBody := strings.TrimSpace(existing)

	switch {
	case newBody == oldBody:
		// Already up to date.
		return nil
	case strings.Contains(newBody, oldBody):
		// The new export is more complete.
		return c.updateNote(ctx, noteID, body)
	case strings.Contains(oldBody, newBody):
		// Joplin already has more content.
		return nil
	default:
		merged := fmt.Sprintf("%s\n\n---\n### Merged from %s on %s\n\n%s",
			existing, c.hostname(), c.now().Format("2006-01-02 15:04"), body)
		return c.updateNote(ctx, noteID, merged)
	}
}

// notebookID returns the ID of the configured notebook, creating the
// notebook when it does not exist. Folder listings are paginated.
func (c *Client) notebookID(ctx context.Context) (string, error) {
	for page := 1; ; page++ {
		var result struct {
			Items []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"items"`
			HasMore bool `json:"has_more"`
		}
		q := url.Values{"page": {strconv.Itoa(page)}}
		if err := c.do(ctx, http.MethodGet, "/folders", q, nil, &result); err != nil {
			return "", err
		}
		for _, folder := range result.Items {
			if folder.Title == c.notebookName {
				return folder.ID, nil
			}
		}
		if !result.HasMore {
			break
		}
	}

	var created struct {
		ID string `json:"id"`
	}
	body := map[string]string{"title": c.notebookName}
	if err := c.do(ctx, http.MethodPost, "/folders", nil, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// findNote returns the ID of the note with an exactly matching title, or
// "" when no such note exists.
func (c *Client) findNote(ctx context.Context, title string) (string, error) {
	var result struct {
		Items []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
	}
	q := url.Values{
		"query": {fmt.Sprintf("title:%q", title)},
		"type":  {"note"},
	}
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &result); err != nil {
		return "", err
	}
	for _, n := range result.Items {
		if n.Title == title {
			return n.ID, nil
		}
	}
	return "", nil
}

func (c *Client) noteBody(ctx context.Context, noteID string) (string, error) {
	var result struct {
		Body string `json:"body"`
	}
	q := url.Values{"fields": {"body"}}
	if err := c.do(ctx, http.MethodGet, "/notes/"+noteID, q, nil, &result); err != nil {
		return "", err
	}
	return result.Body, nil
}

func (c *Client) createNote(ctx context.Context, parentID, title, body string) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	note := map[string]any{
		"parent_id":       parentID,
		"title":           title,
		"body":            body,
		"markup_language": 1, // markdown
	}
	if err := c.do(ctx, http.MethodPost, "/notes", nil, note, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *Client) updateNote(ctx context.Context, noteID, body string) error {
	note := map[string]any{
		"body":            body,
		"markup_language": 1,
	}
	return c.do(ctx, http.MethodPut, "/notes/"+noteID, nil, note, nil)
}

// setTags reconciles the note's tags with the wanted set, creating tags as
// needed and removing tags no longer wanted.
func (c *Client) setTags(ctx context.Context, noteID string, wanted []string) error {
	current, err := c.noteTags(ctx, noteID)
	if err != nil {
		return err
	}

	currentTitles := make(map[string]bool, len(current))
	for _, t := range current {
		currentTitles[t.Title] = true
	}

	for _, title := range wanted {
		if currentTitles[title] {
			continue
		}
		tagID, err := c.ensureTag(ctx, title)
		if err != nil {
			return err
		}
		body := map[string]string{"id": noteID}
		if err := c.do(ctx, http.MethodPost, "/tags/"+tagID+"/notes", nil, body, nil); err != nil {
			return err
		}
	}

	wantedTitles := make(map[string]bool, len(wanted))
	for _, t := range wanted {
		wantedTitles[t] = true
	}
	for _, t := range current {
		if wantedTitles[t.Title] {
			continue
		}
		if err := c.do(ctx, http.MethodDelete, "/tags/"+t.ID+"/notes/"+noteID, nil, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

type tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (c *Client) noteTags(ctx context.Context, noteID string) ([]tag, error) {
	var result struct {
		Items []tag `json:"items"`
	}
	q := url.Values{"fields": {"id,title"}}
	if err := c.do(ctx, http.MethodGet, "/notes/"+noteID+"/tags", q, nil, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// ensureTag returns the ID of the tag with the given title, creating the
// tag when it does not exist.
func (c *Client) ensureTag(ctx context.Context, title string) (string, error) {
	var result struct {
		Items []tag `json:"items"`
	}
	q := url.Values{
		"query": {fmt.Sprintf("title:%q", title)},
		"type":  {"tag"},
	}
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &result); err != nil {
		return "", err
	}
	for _, t := range result.Items {
		if t.Title == title {
			return t.ID, nil
		}
	}

	var created struct {
		ID string `json:"id"`
	}
	body := map[string]string{"title": title}
	if err := c.do(ctx, http.MethodPost, "/tags", nil, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// do performs a single API request. The token is always sent as a query
// parameter, per the Joplin Data API convention.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("token", c.token)

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path+"?"+query.Encode(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dlm.Errorf(dlm.EUNAVAILABLE, "joplin is not reachable at %s, is the web clipper service enabled? (%v)", c.apiURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return dlm.Errorf(dlm.EINTERNAL, "joplin API returned HTTP %d for %s %s: %s", resp.StatusCode, method, path, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
