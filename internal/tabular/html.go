package tabular

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/unicode"
)

// Class names the platform stamps on its structured payroll export.
const (
	staffMarkerClass = "staffHeader"
	staffNameClass   = "staffName"
	resultsClass     = "results"
	appointmentClass = "appointments"
)

// decodeMarkup turns raw upload bytes into markup text. The platform emits
// UTF-8 or UTF-16 with no reliable declaration, so invalid UTF-8 falls back
// to a UTF-16 decode.
func decodeMarkup(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

func parseMarkup(data []byte) (*html.Node, error) {
	return html.Parse(strings.NewReader(decodeMarkup(data)))
}

// markedSections walks the structured payroll export: each staffHeader marker
// element names one employee, and the first following results/appointments
// table holds that employee's rows. Markers without a usable table are
// skipped.
func markedSections(root *html.Node) []NamedTable {
	var sections []NamedTable
	walkElements(root, func(n *html.Node) {
		if !hasClass(n, staffMarkerClass) {
			return
		}
		name := strings.TrimSpace(textOfClass(n, staffNameClass))
		if name == "" {
			return
		}
		tbl := followingResultsTable(n)
		if tbl == nil {
			return
		}
		grid := tableGrid(tbl)
		if grid.IsEmpty() {
			return
		}
		sections = append(sections, NamedTable{Name: name, Table: grid})
	})
	return sections
}

// followingResultsTable scans the marker's following siblings, descending
// into container elements, for a table carrying both structural classes.
func followingResultsTable(marker *html.Node) *html.Node {
	for cur := marker.NextSibling; cur != nil; cur = cur.NextSibling {
		if cur.Type != html.ElementNode {
			continue
		}
		if isResultsTable(cur) {
			return cur
		}
		if cur.DataAtom == atom.Div || cur.DataAtom == atom.Section {
			if tbl := findTable(cur, isResultsTable); tbl != nil {
				return tbl
			}
		}
	}
	return nil
}

func isResultsTable(n *html.Node) bool {
	return n.DataAtom == atom.Table && hasClass(n, resultsClass) && hasClass(n, appointmentClass)
}

// firstTable returns the grid of the first table element in the document.
func firstTable(root *html.Node) (RawTable, bool) {
	tbl := findTable(root, func(n *html.Node) bool { return n.DataAtom == atom.Table })
	if tbl == nil {
		return nil, false
	}
	grid := tableGrid(tbl)
	if grid.IsEmpty() {
		return nil, false
	}
	return grid, true
}

// tableGrid flattens one table element into rows of trimmed cell text.
// Nested tables are not descended into; colspans are ignored.
func tableGrid(tbl *html.Node) RawTable {
	var grid RawTable
	walkRows(tbl, func(tr *html.Node) {
		var row []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
				row = append(row, collapseSpace(nodeText(c)))
			}
		}
		if row != nil {
			grid = append(grid, row)
		}
	})
	return grid
}

// walkRows visits every tr belonging to tbl, skipping rows of nested tables.
func walkRows(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Table:
			continue
		case atom.Tr:
			fn(c)
		default:
			walkRows(c, fn)
		}
	}
}

func findTable(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if tbl := findTable(c, match); tbl != nil {
			return tbl
		}
	}
	return nil
}

func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}

func textOfClass(n *html.Node, class string) string {
	var found *html.Node
	walkElements(n, func(e *html.Node) {
		if found == nil && hasClass(e, class) {
			found = e
		}
	})
	if found == nil {
		return ""
	}
	return nodeText(found)
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			visit(gc)
		}
	}
	visit(n)
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
