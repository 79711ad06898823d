package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "  Real Madrid \n", expected: "Real Madrid"},
		{in: "Paris  Saint-Germain", expected: "Paris Saint-Germain"},
		{in: "Bayern\x00 Munich", expected: "Bayern Munich"},
		{in: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Normalize(test.in), test.in)
	}
}

func TestTextAndAttr(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table><tr>
			<td class="hauptlink"><a title=" Arsenal FC " href="/x">  Arsenal
			</a></td>
		</tr></table>`))
	require.NoError(t, err)

	link := doc.Find("td.hauptlink a")
	require.Equal(t, "Arsenal", Text(link))

	title, ok := Attr(link, "title")
	require.True(t, ok)
	require.Equal(t, "Arsenal FC", title)

	_, ok = Attr(link, "data-missing")
	require.False(t, ok)

	require.Equal(t, "", Text(doc.Find("td.missing")))
}
