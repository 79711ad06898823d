package strength

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestOpponentMap(t *testing.T) {
	m := NewOpponentMap()
	require.True(t, m.AddFixture("Arsenal FC", "FC Barcelona"))
	require.True(t, m.AddFixture("FC Barcelona", "Arsenal FC"))
	require.True(t, m.AddFixture("Arsenal FC", "Bayern Munich"))
	require.False(t, m.AddFixture("Bayern Munich", "Bayern Munich"))

	require.Equal(t, []string{"Arsenal FC", "FC Barcelona", "Bayern Munich"}, m.Teams())
	require.Equal(t, []string{"FC Barcelona", "Bayern Munich"}, m.Opponents("Arsenal FC"))
	require.Equal(t, []string{"Arsenal FC"}, m.Opponents("FC Barcelona"))
	require.Nil(t, m.Opponents("Celtic FC"))

	for _, team := range m.Teams() {
		require.False(t, m.Has(team, team), team)
		for _, opponent := range m.Opponents(team) {
			require.True(t, m.Has(opponent, team), "%s -> %s is not symmetric", team, opponent)
		}
	}
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "100.0", FormatValue(100))
	require.Equal(t, "85.5", FormatValue(85.5))
	require.Equal(t, "12.35", FormatValue(12.35))
	require.Equal(t, "1500.0", FormatValue(1500))
	require.Equal(t, "0.0", FormatValue(0))
}

func TestFormatColumn(t *testing.T) {
	require.Equal(t, []string{"782.117", "100.000", "0.000"}, FormatColumn([]float64{782.117, 100, 0}))
	require.Equal(t, []string{"1280.0", "96.5"}, FormatColumn([]float64{1280, 96.5}))
	require.Equal(t, []string{"0.333333"}, FormatColumn([]float64{1.0 / 3}))
	require.Empty(t, FormatColumn(nil))

	rows := []Row{{Team: "Team A", Average: 56.175}, {Team: "Team B", Average: 12}}
	require.Equal(t, []string{"56.175", "12.000"}, Averages(rows))
}

func TestRound(t *testing.T) {
	testCases := []struct {
		value    float64
		places   int
		expected float64
	}{
		{value: 10.0025, places: 3, expected: 10.002},
		{value: 50.0625, places: 3, expected: 50.062},
		{value: 50.0635, places: 3, expected: 50.063},
		{value: 2.675, places: 2, expected: 2.67},
		{value: 0.125, places: 2, expected: 0.12},
		{value: 782.1166666, places: 3, expected: 782.117},
		{value: 1500, places: 2, expected: 1500},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Round(test.value, test.places), "%v", test.value)
	}
}

func TestCalculateRoundsHalfToEven(t *testing.T) {
	values := TeamValuation{
		"Opp 1": 10.01, "Opp 2": 10, "Opp 3": 10, "Opp 4": 10,
		"Opp 5": 100.25, "Opp 6": 50, "Opp 7": 20, "Opp 8": 30,
	}
	m := NewOpponentMap()
	for _, opponent := range []string{"Opp 1", "Opp 2", "Opp 3", "Opp 4"} {
		m.AddFixture("Team X", opponent)
	}
	for _, opponent := range []string{"Opp 5", "Opp 6", "Opp 7", "Opp 8"} {
		m.AddFixture("Team Y", opponent)
	}

	averages := map[string]float64{}
	for _, row := range Calculate(m, values) {
		averages[row.Team] = row.Average
	}
	require.Equal(t, 10.002, averages["Team X"])
	require.Equal(t, 50.062, averages["Team Y"])
}

func TestCalculateScenario(t *testing.T) {
	values := TeamValuation{"Team A": 50, "Team B": 100, "Team C": 0}
	m := NewOpponentMap()
	m.AddFixture("Team A", "Team B")
	m.AddFixture("Team A", "Team C")

	rows := Calculate(m, values)

	expected := []Row{
		{
			Team:      "Team A",
			Average:   100,
			Opponents: []Opponent{{Name: "Team B", Value: 100}},
			Detail:    "Team B (100.0 M€)",
		},
		{
			Team:      "Team B",
			Average:   50,
			Opponents: []Opponent{{Name: "Team A", Value: 50}},
			Detail:    "Team A (50.0 M€)",
		},
		// fixtures are symmetric, so Team C faces Team A as well
		{
			Team:      "Team C",
			Average:   50,
			Opponents: []Opponent{{Name: "Team A", Value: 50}},
			Detail:    "Team A (50.0 M€)",
		},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatal(diff)
	}
}

func TestCalculateTeamWithoutFixtures(t *testing.T) {
	m := NewOpponentMap()
	m.AddTeam("Lonely FC")

	rows := Calculate(m, TeamValuation{"Lonely FC": 120})
	require.Equal(t, []Row{{Team: "Lonely FC"}}, rows)
}

func TestCalculateOrdering(t *testing.T) {
	values := TeamValuation{
		"Real Madrid":    1340,
		"Man City":       1280.5,
		"Bayern Munich":  950,
		"Club Brugge":    180.2,
		"Bodø/Glimt":     56.35,
		"Kairat Almaty":  21.55,
		"Slavia Prague":  180.2,
		"Unknown Rovers": 0,
	}
	m := NewOpponentMap()
	m.AddFixture("Club Brugge", "Bodø/Glimt")
	m.AddFixture("Club Brugge", "Real Madrid")
	m.AddFixture("Kairat Almaty", "Man City")
	m.AddFixture("Bodø/Glimt", "Slavia Prague")
	m.AddFixture("Club Brugge", "Unknown Rovers")
	m.AddFixture("Bayern Munich", "Club Brugge")
	m.AddFixture("Slavia Prague", "Bayern Munich")

	rows := Calculate(m, values)
	require.Len(t, rows, m.Len())

	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i-1].Average, rows[i].Average)
	}

	for _, row := range rows {
		sum := 0.0
		count := 0
		for _, opponent := range m.Opponents(row.Team) {
			if values[opponent] > 0 {
				sum += values[opponent]
				count++
			}
		}
		if count == 0 {
			require.Equal(t, 0.0, row.Average, row.Team)
			require.Empty(t, row.Detail, row.Team)
			continue
		}
		require.InDelta(t, sum/float64(count), row.Average, 0.0005, row.Team)
		for i := 1; i < len(row.Opponents); i++ {
			require.GreaterOrEqual(t, row.Opponents[i-1].Value, row.Opponents[i].Value)
		}
	}

	var brugge Row
	for _, row := range rows {
		if row.Team == "Club Brugge" {
			brugge = row
		}
	}
	require.Equal(t, "Real Madrid (1340.0 M€)<br>Bayern Munich (950.0 M€)<br>Bodø/Glimt (56.35 M€)", brugge.Detail)
	require.Equal(t, 782.117, brugge.Average)
}

func TestCalculateTiesKeepMapOrder(t *testing.T) {
	values := TeamValuation{"A": 10, "B": 10, "C": 10, "D": 10}
	m := NewOpponentMap()
	m.AddFixture("C", "A")
	m.AddFixture("B", "D")

	for i := 0; i < 10; i++ {
		rows := Calculate(m, values)
		teams := make([]string, len(rows))
		for j, row := range rows {
			teams[j] = row.Team
		}
		require.Equal(t, []string{"C", "A", "B", "D"}, teams)
	}
}
