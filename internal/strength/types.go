package strength

import (
	"strconv"
	"strings"
)

// TeamValuation maps a team name to its market value in millions.
type TeamValuation map[string]float64

// OpponentMap maps each team to the distinct opponents it is scheduled against.
// Teams and opponents keep the order they were first added in, which makes every
// iteration over the map (and so the final ranking's tie order) deterministic.
type OpponentMap struct {
	teams     []string
	opponents map[string]*opponentSet
}

type opponentSet struct {
	order   []string
	members map[string]struct{}
}

func (s *opponentSet) add(name string) {
	if _, ok := s.members[name]; ok {
		return
	}
	s.members[name] = struct{}{}
	s.order = append(s.order, name)
}

func NewOpponentMap() *OpponentMap {
	return &OpponentMap{opponents: map[string]*opponentSet{}}
}

func (m *OpponentMap) set(team string) *opponentSet {
	set, ok := m.opponents[team]
	if !ok {
		set = &opponentSet{members: map[string]struct{}{}}
		m.opponents[team] = set
		m.teams = append(m.teams, team)
	}
	return set
}

// AddTeam registers a team with no opponents if it isn't known yet.
func (m *OpponentMap) AddTeam(team string) {
	m.set(team)
}

// AddFixture registers the undirected edge home <-> away. A fixture of a team against
// itself is rejected and false is returned.
func (m *OpponentMap) AddFixture(home, away string) bool {
	if home == away {
		return false
	}
	m.set(home).add(away)
	m.set(away).add(home)
	return true
}

// Teams returns every team in the order it was first seen.
func (m *OpponentMap) Teams() []string {
	return append([]string(nil), m.teams...)
}

// Opponents returns the opponents of a team in the order they were first seen.
func (m *OpponentMap) Opponents(team string) []string {
	set, ok := m.opponents[team]
	if !ok {
		return nil
	}
	return append([]string(nil), set.order...)
}

func (m *OpponentMap) Has(team, opponent string) bool {
	set, ok := m.opponents[team]
	if !ok {
		return false
	}
	_, ok = set.members[opponent]
	return ok
}

func (m *OpponentMap) Len() int {
	return len(m.teams)
}

// FormatValue prints a value in its shortest form while always keeping at least one
// decimal digit, so 100 is printed as "100.0" and 12.35 as "12.35".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatColumn prints values with a shared number of decimal digits, as many as the
// longest shortest form needs, at least one and at most six. A column of 100 and
// 782.117 is printed as "100.000" and "782.117".
func FormatColumn(values []float64) []string {
	places := 1
	for _, v := range values {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			places = max(places, min(len(s)-dot-1, 6))
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'f', places, 64)
	}
	return out
}

// Averages formats the average column of a ranking.
func Averages(rows []Row) []string {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.Average
	}
	return FormatColumn(values)
}
