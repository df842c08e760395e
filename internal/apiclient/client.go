package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Houeta/timetable-bot/internal/models"
)

// Interface describes the upstream timetable API consumed by the poller,
// the notifier and the command handlers.
type Interface interface {
	// Poll fetches the current upstream version metadata for both horizons.
	Poll(ctx context.Context) (*models.Poll, error)
	// Snapshot fetches a full timetable by its opaque uid.
	Snapshot(ctx context.Context, uid string) (*models.Snapshot, error)
	// Latest fetches the current timetable for a horizon directly.
	Latest(ctx context.Context, fetch models.Fetch) (*models.Snapshot, error)
	// Default fetches the fallback weekly template for a group.
	Default(ctx context.Context, group string, weekday time.Weekday) (*models.DefaultGroup, error)
}

// APIError is the error payload the upstream service returns on non-200
// responses.
type APIError struct {
	Cause string `json:"cause"`
	Desc  string `json:"desc"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s: %s", e.Cause, e.Desc)
}

// Client wraps HTTP GET calls to the upstream timetable service.
type Client struct {
	log    *slog.Logger
	client *http.Client
	host   string
}

func NewClient(log *slog.Logger, host string) *Client {
	return &Client{log: log, host: strings.TrimRight(host, "/"), client: http.DefaultClient}
}

func (c *Client) Poll(ctx context.Context) (*models.Poll, error) {
	var poll models.Poll
	if err := c.get(ctx, "/poll", &poll); err != nil {
		return nil, fmt.Errorf("failed to poll upstream: %w", err)
	}

	return &poll, nil
}

func (c *Client) Snapshot(ctx context.Context, uid string) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.get(ctx, "/snapshot/"+url.PathEscape(uid), &snap); err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", uid, err)
	}

	return &snap, nil
}

func (c *Client) Latest(ctx context.Context, fetch models.Fetch) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.get(ctx, "/latest/"+string(fetch), &snap); err != nil {
		return nil, fmt.Errorf("failed to get latest %s timetable: %w", fetch, err)
	}

	return &snap, nil
}

func (c *Client) Default(ctx context.Context, group string, weekday time.Weekday) (*models.DefaultGroup, error) {
	path := fmt.Sprintf("/default/%s/%s", url.PathEscape(group), strings.ToLower(weekday.String()))

	var def models.DefaultGroup
	if err := c.get(ctx, path, &def); err != nil {
		return nil, fmt.Errorf("failed to get default timetable for %s: %w", group, err)
	}

	return &def, nil
}

// get performs a GET request against the API host and decodes the JSON body
// into out. A non-200 response is decoded as an APIError.
func (c *Client) get(ctx context.Context, path string, out any) error {
	reqURL := c.host + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create new request %s: %w", reqURL, err)
	}

	c.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", reqURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr APIError
		if decErr := json.NewDecoder(res.Body).Decode(&apiErr); decErr != nil {
			return fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
		}

		return &apiErr
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", reqURL, err)
	}

	return nil
}
