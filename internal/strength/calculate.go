package strength

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DetailSeparator separates opponents in Row.Detail, the report embeds it as markup.
const DetailSeparator = "<br>"

type Opponent struct {
	Name  string
	Value float64
}

// Row is one team's line in the ranking.
type Row struct {
	Team string
	// Average is the mean value of the valued opponents, rounded to 3 decimals.
	Average float64
	// Opponents holds the valued opponents sorted by value, highest first.
	Opponents []Opponent
	// Detail is the human readable listing of Opponents, "Name (value M€)" joined
	// by DetailSeparator.
	Detail string
}

func (o Opponent) String() string {
	return fmt.Sprintf("%s (%s M€)", o.Name, FormatValue(o.Value))
}

// Calculate produces one row per team in the opponent map, ranked by the average
// market value of its opponents. Opponents without a known positive value are left out
// of both the average and the listing, a team left with none gets an average of 0.
// Equal averages keep the opponent map's order.
func Calculate(opponents *OpponentMap, values TeamValuation) []Row {
	rows := make([]Row, 0, opponents.Len())

	for _, team := range opponents.Teams() {
		var valued []Opponent
		for _, name := range opponents.Opponents(team) {
			value := values[name]
			if value <= 0 {
				continue
			}
			valued = append(valued, Opponent{Name: name, Value: value})
		}
		slices.SortStableFunc(valued, func(a, b Opponent) int {
			switch {
			case a.Value > b.Value:
				return -1
			case a.Value < b.Value:
				return 1
			}
			return 0
		})

		row := Row{Team: team, Opponents: valued}
		if len(valued) > 0 {
			sum := 0.0
			listing := make([]string, len(valued))
			for i, o := range valued {
				sum += o.Value
				listing[i] = o.String()
			}
			row.Average = Round(sum/float64(len(valued)), 3)
			row.Detail = strings.Join(listing, DetailSeparator)
		}

		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		switch {
		case a.Average > b.Average:
			return -1
		case a.Average < b.Average:
			return 1
		}
		return 0
	})

	return rows
}

// Round rounds the exact binary value of v to the given number of decimal places,
// a value exactly halfway goes to the even digit. 2.675 is stored as 2.67499... so it
// becomes 2.67, 50.0625 is exact and becomes 50.062.
func Round(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
