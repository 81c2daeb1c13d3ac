package grep

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

func TestSearch_CaseSensitive(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	assert.Equal(t,
		[]string{"safe, fast, productive."},
		Search("duct", contents).Strings(),
	)
}

func TestSearchCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		[]string{"Rust:", "Trust me."},
		SearchCaseInsensitive("rUsT", poem).Strings(),
	)
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	assert.Equal(t,
		[]string{"Rust:", "safe, fast, productive.", "Pick three.", "Trust me."},
		Search("", poem).Strings(),
	)
	assert.Equal(t, 4, SearchCaseInsensitive("", poem).Len())
}

func TestSearch_EmptyContents(t *testing.T) {
	for _, query := range []string{"", "a", "Rust"} {
		assert.Zero(t, Search(query, "").Len(), "query %q", query)
		assert.Zero(t, SearchCaseInsensitive(query, "").Len(), "query %q", query)
	}
}

func TestSearch_PreservesOrderAndDuplicates(t *testing.T) {
	contents := "b x\na x\nb x\n"

	assert.Equal(t, []string{"b x", "a x", "b x"}, Search("x", contents).Strings())
}

func TestSearch_ExactSubstring(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
	}{
		{"ascii", "ab", "abc\nxab\nba\nAB\n"},
		{"unicode", "é", "café\ncafe\nÉcole\nété"},
		{"spaces", " ", "a b\nab\n \n"},
		{"no match", "zzz", "a\nb\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want []string
			for _, line := range strings.Split(strings.TrimSuffix(tt.contents, "\n"), "\n") {
				if strings.Contains(line, tt.query) {
					want = append(want, line)
				}
			}

			got := Search(tt.query, tt.contents).Strings()
			if len(want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestSearchCaseInsensitive_SupersetOfCaseSensitive(t *testing.T) {
	contents := "Hello\nhello\nHELLO\nhelp\nÜber über\n"

	for _, query := range []string{"hello", "HeLLo", "Über", "über", "p", ""} {
		sensitive := Search(query, contents).Strings()
		insensitive := SearchCaseInsensitive(query, contents).Strings()

		assert.GreaterOrEqual(t, len(insensitive), len(sensitive), "query %q", query)

		for _, line := range sensitive {
			assert.Contains(t, insensitive, line, "query %q", query)
		}

		for _, line := range insensitive {
			assert.Contains(t, strings.Split(contents, "\n"), line,
				"line %q is not an original line", line)
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	first := SearchCaseInsensitive("t", poem)
	second := SearchCaseInsensitive("t", poem)

	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, first.Strings(), second.Strings())
}

func TestSearch_LinesAreSpans(t *testing.T) {
	r := Search("fast", poem)
	require.Equal(t, 1, r.Len())

	l := r.Lines()[0]
	assert.Equal(t, Line{Offset: 6, Len: 23}, l)
	assert.Equal(t, "safe, fast, productive.", l.Text(poem))
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb\n\n", []string{"a", "", "b", ""}},
		{"only newline", "\n", []string{""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"embedded cr", "a\rb\nc", []string{"a\rb", "c"}},
		{"trailing cr without newline", "a\nb\r", []string{"a", "b\r"}},
		{"cr before crlf", "a\r\r\n", []string{"a\r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for l := range Lines(tt.contents) {
				got = append(got, l.Text(tt.contents))
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLines_StopsEarly(t *testing.T) {
	var got []Line
	for l := range Lines("a\nb\nc") {
		got = append(got, l)
		if len(got) == 2 {
			break
		}
	}

	assert.Len(t, got, 2)
}

func TestResult_All(t *testing.T) {
	r := Search("e", poem)

	assert.Equal(t, r.Strings(), slices.Collect(r.All()))
}

func TestConfig_Search(t *testing.T) {
	sensitive := Config{query: "rUsT", filePath: "poem.txt"}
	insensitive := Config{query: "rUsT", filePath: "poem.txt", ignoreCase: true}

	assert.Zero(t, sensitive.Search(poem).Len())
	assert.Equal(t, []string{"Rust:", "Trust me."}, insensitive.Search(poem).Strings())
}
