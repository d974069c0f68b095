package scraper

import (
	"fmt"
	"net/http"
	"time"
)

var baseURL = "https://etudier.uqam.ca"

// Client handles HTTP requests to the public UQAM course pages
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new scraper client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Get fetches the given path and returns the HTTP response
func (c *Client) Get(path string) (*http.Response, error) {
	url := fmt.Sprintf("%s/%s", baseURL, path)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; horairectl/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}
