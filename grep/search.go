package grep

import (
	"iter"
	"strings"
)

// Line locates one line of a text by byte offset and length.
// The line terminator is not included.
type Line struct {
	Offset int
	Len    int
}

// Text returns the line's content within contents, which must be the text
// the Line was taken from.
func (l Line) Text(contents string) string {
	return contents[l.Offset : l.Offset+l.Len]
}

// Lines returns an iterator over the lines of contents in order.
//
// Contents are split on '\n'. A '\r' immediately before a '\n' belongs to the
// terminator. A final line without a '\n' is included unless it is empty, so
// a trailing newline does not add an empty line.
func Lines(contents string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		start := 0

		for start < len(contents) {
			n := strings.IndexByte(contents[start:], '\n')
			if n < 0 {
				yield(Line{Offset: start, Len: len(contents) - start})

				return
			}

			size := n
			if size > 0 && contents[start+size-1] == '\r' {
				size--
			}

			if !yield(Line{Offset: start, Len: size}) {
				return
			}

			start += n + 1
		}
	}
}

// Result is the ordered set of lines matched by a search.
type Result struct {
	contents string
	lines    []Line
}

// Len returns the number of matched lines.
func (r Result) Len() int { return len(r.lines) }

// Lines returns the matched line spans in file order.
// The returned slice must not be modified.
func (r Result) Lines() []Line { return r.lines }

// All returns an iterator over the text of each matched line.
func (r Result) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range r.lines {
			if !yield(l.Text(r.contents)) {
				return
			}
		}
	}
}

// Strings returns the text of each matched line.
func (r Result) Strings() []string {
	s := make([]string, 0, len(r.lines))
	for text := range r.All() {
		s = append(s, text)
	}

	return s
}

// Search returns the lines of contents that contain query.
// Comparison is byte-exact. An empty query matches every line.
func Search(query, contents string) Result {
	return filter(contents, func(text string) bool {
		return strings.Contains(text, query)
	})
}

// SearchCaseInsensitive returns the lines of contents that contain query
// when both are converted to lower case. Matched lines keep their original
// case.
func SearchCaseInsensitive(query, contents string) Result {
	query = strings.ToLower(query)

	return filter(contents, func(text string) bool {
		return strings.Contains(strings.ToLower(text), query)
	})
}

// Search runs the search mode selected by c over contents.
func (c Config) Search(contents string) Result {
	if c.ignoreCase {
		return SearchCaseInsensitive(c.query, contents)
	}

	return Search(c.query, contents)
}

func filter(contents string, match func(string) bool) Result {
	r := Result{contents: contents}

	for l := range Lines(contents) {
		if match(l.Text(contents)) {
			r.lines = append(r.lines, l)
		}
	}

	return r
}
