package transfermarkt

import (
	"fmt"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/strength"
	"oppstrength/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_parse_valuations = "parse.valuations"
	report_parse_fixtures   = "parse.fixtures"
)

// ParseValuations reads the participants page into team -> market value.
//
// Rows without both a team link and a value cell are skipped. A value cell that can't be
// parsed fails the whole page, unless lenient is set, then it is reported and skipped.
func ParseValuations(doc *goquery.Document, lenient bool, tel telemetry.API) (strength.TeamValuation, error) {
	tel = telemetry.OrSlog(tel)
	values := strength.TeamValuation{}

	var parseErr error
	doc.Find("table.items tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		nameLink := row.Find("td.hauptlink a").First()
		valueCell := row.Find("td.rechts").First()
		if nameLink.Length() == 0 || valueCell.Length() == 0 {
			return true
		}

		name := htmlutil.Text(nameLink)
		value, err := ParseMarketValue(htmlutil.Text(valueCell))
		if err != nil {
			err = fmt.Errorf("team %q: %w", name, err)
			if !lenient {
				parseErr = err
				return false
			}
			tel.ReportWarning(report_parse_valuations, err)
			return true
		}

		values[name] = value
		return true
	})
	if parseErr != nil {
		tel.ReportBroken(report_parse_valuations, parseErr)
		return nil, parseErr
	}

	tel.ReportCount("valuations.teams", int64(len(values)))
	return values, nil
}

// ParseFixtures reads the season schedule into a symmetric opponent map.
//
// Teams are named by the `title` attribute of their links, which carries the full name
// even where the visible text is abbreviated. Rows without both a home and an away link
// are skipped.
func ParseFixtures(doc *goquery.Document, tel telemetry.API) *strength.OpponentMap {
	tel = telemetry.OrSlog(tel)
	opponents := strength.NewOpponentMap()

	doc.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		homeLink := row.Find("td.text-right.hauptlink a")
		awayLink := row.Find("td.no-border-links.hauptlink a")
		if homeLink.Length() == 0 || awayLink.Length() == 0 {
			return
		}

		home, _ := htmlutil.Attr(homeLink, "title")
		away, _ := htmlutil.Attr(awayLink, "title")
		if home == "" || away == "" {
			tel.ReportDebug("fixture row without team title", home, away)
			return
		}

		if !opponents.AddFixture(home, away) {
			tel.ReportWarning(report_parse_fixtures, fmt.Errorf("team %q plays itself", home))
		}
	})

	tel.ReportCount("fixtures.teams", int64(opponents.Len()))
	return opponents
}
