package schedapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"horairectl/pkg/calendar"
	"horairectl/pkg/logger"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoSchedules means the server found no conflict-free combination.
	ErrNoSchedules = errors.New("no schedules found")
	// ErrClassNotFound is returned by FetchClassDetails when the server has no row for a section.
	ErrClassNotFound = errors.New("class not found")
)

// maxParallel bounds concurrent /class_details look-ups
const maxParallel = 8

// Client talks to the schedule generation server
type Client struct {
	BaseURL string
	// Season is sent with /schedule when set, e.g. "automne2025"
	Season string

	httpClient *http.Client
}

// NewClient creates a new API client for the server at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "horairectl/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	return resp, nil
}

// FetchSchedules asks the server for every conflict-free combination of the given course codes.
func (c *Client) FetchSchedules(ctx context.Context, sigles []string) ([][]string, error) {
	form := url.Values{}
	form.Set("sigles", strings.Join(sigles, ","))
	if c.Season != "" {
		form.Set("season", c.Season)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/schedule", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var schedResp ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&schedResp); err != nil {
		return nil, fmt.Errorf("failed to decode schedules JSON: %w", err)
	}

	var schedules [][]string
	for _, s := range schedResp.Schedules {
		if len(s) > 0 {
			schedules = append(schedules, s)
		}
	}

	if len(schedules) == 0 {
		return nil, ErrNoSchedules
	}

	return schedules, nil
}

// FetchClassDetails retrieves the weekly sessions of one section, e.g. "INF1120-automne2025-A".
func (c *Client) FetchClassDetails(ctx context.Context, className string) ([]calendar.ClassSession, error) {
	reqURL := fmt.Sprintf("%s/class_details?class_name=%s", c.BaseURL, url.QueryEscape(className))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, className)
	} else if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, className)
	}

	var detailsResp ClassDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&detailsResp); err != nil {
		return nil, fmt.Errorf("failed to decode class details JSON for %s: %w", className, err)
	}

	return detailsResp.ClassDetails, nil
}

// FetchSessions looks up every section of a schedule concurrently and returns all
// their sessions, in the order of classNames. A section the server does not know
// contributes no sessions; any other failure aborts the whole batch.
func (c *Client) FetchSessions(ctx context.Context, classNames []string) ([]calendar.ClassSession, error) {
	results := make([][]calendar.ClassSession, len(classNames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, name := range classNames {
		i, name := i, name
		g.Go(func() error {
			sessions, err := c.FetchClassDetails(gctx, name)
			if errors.Is(err, ErrClassNotFound) {
				logger.Warn().Str("class", name).Msg("server returned no sessions for class")
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = sessions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []calendar.ClassSession
	for _, sessions := range results {
		all = append(all, sessions...)
	}
	return all, nil
}
