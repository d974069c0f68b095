package scraper

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"horairectl/pkg/calendar"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// "De 9 h 30 à 12 h 30"
var timeRangeRe = regexp.MustCompile(`De\s+(.*?)\s+à\s+(.*)`)

// wrapper ids look like "groupes_wrapper20253": year then semester digit
var wrapperIDRe = regexp.MustCompile(`^groupes_wrapper(\d{4})(\d)$`)

var semesterNames = map[string]string{
	"1": "hiver",
	"2": "ete",
	"3": "automne",
}

// seasonFromWrapperID turns "groupes_wrapper20253" into "automne2025".
func seasonFromWrapperID(id string) string {
	m := wrapperIDRe.FindStringSubmatch(id)
	if m == nil {
		return ""
	}
	name, ok := semesterNames[m[2]]
	if !ok {
		return ""
	}
	return name + m[1]
}

// sectionLetter names the idx-th section of a semester: A, B, ... then numbers past Z.
func sectionLetter(idx int) string {
	if idx < 26 {
		return string(rune('A' + idx))
	}
	return fmt.Sprint(idx)
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}

// compactTime turns "9 h 30" into "9h30".
func compactTime(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// followingHeading returns the first element matching sel that comes after the h3
// titled title, looking through the heading's later siblings and then those of its
// ancestors up to scope.
func followingHeading(scope *goquery.Selection, title, sel string) *goquery.Selection {
	heading := scope.Find("h3").FilterFunction(func(_ int, h *goquery.Selection) bool {
		return cleanText(h.Text()) == title
	}).First()

	var found *goquery.Selection
	for node := heading; node.Length() > 0 && !node.IsSelection(scope); node = node.Parent() {
		node.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Is(sel) {
				found = sib
				return false
			}
			if inner := sib.Find(sel); inner.Length() > 0 {
				found = inner.First()
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}

	return scope.Find(sel).Slice(0, 0)
}

// ParseSections extracts every section of a course page as class sessions named
// "SIGLE-season-LETTER", e.g. "INF1120-automne2025-A".
func ParseSections(r io.Reader, sigle string) ([]calendar.ClassSession, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	dayCaser := cases.Title(language.French)
	var sessions []calendar.ClassSession

	// One wrapper per semester the course is listed for
	doc.Find("div[id^='groupes_wrapper']").Each(func(_ int, wrapper *goquery.Selection) {
		id, _ := wrapper.Attr("id")
		season := seasonFromWrapperID(id)
		if season == "" || strings.Contains(wrapper.Text(), "Ce cours n'est pas offert") {
			return
		}

		wrapper.Find("div.groupe").Each(func(idx int, grp *goquery.Selection) {
			name := fmt.Sprintf("%s-%s-%s", sigle, season, sectionLetter(idx))

			heading := grp.Find("h3.no_groupe").First()
			if heading.Length() == 0 {
				heading = grp.Find("h3").FilterFunction(func(_ int, h *goquery.Selection) bool {
					return strings.Contains(h.Text(), "Groupe")
				}).First()
			}
			var groupNo string
			if fields := strings.Fields(heading.Text()); len(fields) > 0 {
				groupNo = fields[len(fields)-1]
			}

			teacher := cleanText(followingHeading(grp, "Enseignant", "li").Text())

			table := followingHeading(grp, "Horaire et lieu", "table")
			table.Find("tr").Each(func(i int, tr *goquery.Selection) {
				if i == 0 {
					return // header row
				}

				var cells []string
				tr.Find("td").Each(func(_ int, td *goquery.Selection) {
					cells = append(cells, cleanText(td.Text()))
				})
				if len(cells) < 5 {
					return
				}

				var start, end string
				if m := timeRangeRe.FindStringSubmatch(cells[2]); m != nil {
					start, end = compactTime(m[1]), compactTime(m[2])
				}

				sessions = append(sessions, calendar.ClassSession{
					Name:      name,
					Group:     groupNo,
					Day:       dayCaser.String(strings.ToLower(cells[0])),
					Dates:     cells[1],
					StartTime: start,
					EndTime:   end,
					Location:  cells[3],
					Type:      cells[4],
					Teacher:   teacher,
				})
			})
		})
	})

	return sessions, nil
}

// FetchSections downloads and parses the public page of a course
func (c *Client) FetchSections(sigle string) ([]calendar.ClassSession, error) {
	sigle = strings.ToUpper(strings.TrimSpace(sigle))
	if cached, ok := readCache(sigle); ok {
		return cached, nil
	}

	resp, err := c.Get("cours?sigle=" + url.QueryEscape(sigle))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	sessions, err := ParseSections(resp.Body, sigle)
	if err != nil {
		return nil, err
	}

	writeCache(sigle, sessions)
	return sessions, nil
}

// Sections groups sessions by section name, keeping first-seen order.
func Sections(sessions []calendar.ClassSession) ([]string, map[string][]calendar.ClassSession) {
	var names []string
	bySection := make(map[string][]calendar.ClassSession)
	for _, s := range sessions {
		if _, ok := bySection[s.Name]; !ok {
			names = append(names, s.Name)
		}
		bySection[s.Name] = append(bySection[s.Name], s)
	}
	return names, bySection
}
