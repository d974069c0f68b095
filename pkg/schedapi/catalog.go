package schedapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// MaxSuggestions caps how many completions are offered for one term
const MaxSuggestions = 10

const catalogPath = "/static/data/cours_uqam.json"

// FetchCatalog returns every known course code, from the disk cache when it is fresh.
func (c *Client) FetchCatalog(ctx context.Context) ([]string, error) {
	if cached, ok := readCatalogCache(c.BaseURL); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+catalogPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var codes []string
	if err := json.NewDecoder(resp.Body).Decode(&codes); err != nil {
		return nil, fmt.Errorf("failed to decode course catalogue JSON: %w", err)
	}

	writeCatalogCache(c.BaseURL, codes)
	return codes, nil
}

// lastTerm returns the term being typed in a comma separated list.
func lastTerm(input string) string {
	terms := strings.Split(input, ",")
	return strings.TrimSpace(terms[len(terms)-1])
}

// Suggest returns up to max catalogue codes starting with the last comma separated
// term of input, ignoring case. An empty term suggests nothing.
func Suggest(catalog []string, input string, max int) []string {
	term := strings.ToUpper(lastTerm(input))
	if term == "" || max <= 0 {
		return nil
	}

	var matches []string
	for _, code := range catalog {
		if strings.HasPrefix(strings.ToUpper(code), term) {
			matches = append(matches, code)
			if len(matches) == max {
				break
			}
		}
	}
	return matches
}

// Complete replaces the term being typed with choice, e.g. ("INF1120, MAT1", "MAT1234") -> "INF1120,MAT1234".
func Complete(input, choice string) string {
	terms := strings.Split(input, ",")
	kept := make([]string, 0, len(terms))
	for _, t := range terms[:len(terms)-1] {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(append(kept, choice), ",")
}
