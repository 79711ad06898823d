package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"oppstrength/internal/strength"
)

type Options struct {
	// Escape treats team names as untrusted text, by default they are embedded as markup
	// the same way the opponent line breaks are.
	Escape bool
}

const documentTemplate = `<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}} Opponent Market Values</title>
    <style>
        table {
            border-collapse: collapse;
            width: 100%;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
        }
        th {
            background-color: #4CAF50;
            color: white;
        }
        tr:nth-child(even){background-color: #f2f2f2;}
        tr:hover {background-color: #ddd;}
    </style>
</head>
<body>
    <h2>{{.Title}} Average Opponent Market Values</h2>
    <table>
        <thead>
            <tr>
                <th>Team</th>
                <th>Avg Opponent Market Value (M€)</th>
                <th>Opponents (M€)</th>
            </tr>
        </thead>
        <tbody>
{{- range .Rows}}
            <tr>
                <td>{{.Team}}</td>
                <td>{{.Average}}</td>
                <td>{{.Opponents}}</td>
            </tr>
{{- end}}
        </tbody>
    </table>
</body>
</html>
`

var document = template.Must(template.New("report").Parse(documentTemplate))

type documentRow struct {
	Team      template.HTML
	Average   string
	Opponents template.HTML
}

func escapedOpponents(opponents []strength.Opponent) template.HTML {
	listing := make([]string, len(opponents))
	for i, o := range opponents {
		listing[i] = template.HTMLEscapeString(o.String())
	}
	return template.HTML(strings.Join(listing, strength.DetailSeparator))
}

// Render produces the complete, self-contained HTML report for a ranking.
func Render(rows []strength.Row, title string, opts Options) ([]byte, error) {
	averages := strength.Averages(rows)
	docRows := make([]documentRow, len(rows))
	for i, row := range rows {
		docRow := documentRow{Average: averages[i]}
		if opts.Escape {
			docRow.Team = template.HTML(template.HTMLEscapeString(row.Team))
			docRow.Opponents = escapedOpponents(row.Opponents)
		} else {
			docRow.Team = template.HTML(row.Team)
			docRow.Opponents = template.HTML(row.Detail)
		}
		docRows[i] = docRow
	}

	var out bytes.Buffer
	err := document.Execute(&out, struct {
		Title string
		Rows  []documentRow
	}{
		Title: title,
		Rows:  docRows,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return out.Bytes(), nil
}

// Filename derives the report's file name from its title,
// "Champions League" -> "champions_league_opponents.html".
func Filename(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_") + "_opponents.html"
}

// WriteFile writes a rendered report into dir under Filename(title) and returns its path.
func WriteFile(dir, title string, contents []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(title))
	err = os.WriteFile(path, contents, 0644)
	if err != nil {
		return "", err
	}
	return path, nil
}
