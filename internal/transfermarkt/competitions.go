package transfermarkt

import (
	"fmt"
	"strconv"
	"strings"
)

type Competition struct {
	// Code is transfermarkt's competition id, ex. "CL".
	Code string
	Name string
}

var Competitions = []Competition{
	{Code: "CL", Name: "Champions League"},
	{Code: "EL", Name: "Europa League"},
	{Code: "UCOL", Name: "Conference League"},
}

// LookupCompetition resolves a menu number ("1"), a code ("cl") or a display name.
func LookupCompetition(key string) (Competition, bool) {
	key = strings.TrimSpace(key)
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(Competitions) {
			return Competitions[n-1], true
		}
		return Competition{}, false
	}
	for _, c := range Competitions {
		if strings.EqualFold(c.Code, key) || strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return Competition{}, false
}

func (c Competition) slug() string {
	return "uefa-" + strings.ReplaceAll(strings.ToLower(c.Name), " ", "-")
}

// ParticipantsPath is the page listing every team with its market value.
func (c Competition) ParticipantsPath() string {
	return fmt.Sprintf("/%s/teilnehmer/pokalwettbewerb/%s", c.slug(), c.Code)
}

// FixturesPath is the page listing every fixture of a season.
func (c Competition) FixturesPath(season int) string {
	return fmt.Sprintf("/%s/gesamtspielplan/pokalwettbewerb/%s/saison_id/%d", c.slug(), c.Code, season)
}
