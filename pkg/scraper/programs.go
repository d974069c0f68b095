package scraper

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var sigleRe = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)

// FetchProgramCourses retrieves the course codes listed on a programme page
// (every data-sigle attribute), sorted and without repeats.
func (c *Client) FetchProgramCourses(path string) ([]string, error) {
	resp, err := c.Get(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var sigles []string

	doc.Find("[data-sigle]").Each(func(i int, sel *goquery.Selection) {
		val, _ := sel.Attr("data-sigle")
		val = strings.ToUpper(strings.TrimSpace(val))
		if sigleRe.MatchString(val) && !seen[val] {
			seen[val] = true
			sigles = append(sigles, val)
		}
	})

	sort.Strings(sigles)
	return sigles, nil
}
