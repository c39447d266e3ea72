// Package tables decodes the files camelot writes into rows of cell text.
package tables

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/nodewee/go-camelot/pkg/types"
	"github.com/nodewee/go-camelot/pkg/utils"
)

// Table is one decoded table
type Table struct {
	Name string     `json:"name,omitempty"`
	Page string     `json:"page,omitempty"`
	Rows [][]string `json:"rows"`
}

// Columns returns the width of the widest row
func (t *Table) Columns() int {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Decode parses content written in format. Excel and SQLite are binary
// containers and are not decoded.
func Decode(format types.Format, content []byte) (*Table, error) {
	var (
		rows [][]string
		err  error
	)

	switch format {
	case types.FormatCSV:
		rows, err = ParseCSV(content)
	case types.FormatJSON:
		rows, err = ParseJSON(content)
	case types.FormatHTML:
		rows, err = ParseHTML(content)
	default:
		return nil, utils.NewError(utils.ErrorTypeUnsupported,
			fmt.Sprintf("cannot decode %s output", format), nil)
	}
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, fmt.Sprintf("failed to decode %s table", format))
	}

	return &Table{Rows: rows}, nil
}

// DecodeArtifacts decodes every artifact, keeping their order
func DecodeArtifacts(format types.Format, artifacts []types.Artifact) ([]*Table, error) {
	out := make([]*Table, 0, len(artifacts))
	for _, artifact := range artifacts {
		table, err := Decode(format, artifact.Content)
		if err != nil {
			return nil, utils.WrapError(err, "", artifact.Name)
		}
		table.Name = artifact.Name
		table.Page = artifact.Page
		out = append(out, table)
	}
	return out, nil
}

// ParseCSV reads comma separated rows. Rows may differ in length.
func ParseCSV(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		normalizeRow(record)
	}
	return records, nil
}

// ParseJSON reads the records layout camelot writes: an array of objects
// keyed by column index ("0", "1", ...).
func ParseJSON(content []byte) ([][]string, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		keys := make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool { return columnLess(keys[i], keys[j]) })

		row := make([]string, len(keys))
		for i, key := range keys {
			row[i] = cellString(record[key])
		}
		rows = append(rows, normalizeRow(row))
	}
	return rows, nil
}

// ParseHTML reads every <tr> of the first <table> in content
func ParseHTML(content []byte) ([][]string, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	table := findElement(doc, atom.Table)
	if table == nil {
		return nil, fmt.Errorf("no table element found")
	}

	var rows [][]string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.DataAtom == atom.Tr {
			var row []string
			for cell := node.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && (cell.DataAtom == atom.Td || cell.DataAtom == atom.Th) {
					row = append(row, textContent(cell))
				}
			}
			rows = append(rows, normalizeRow(row))
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)

	return rows, nil
}

func findElement(node *html.Node, a atom.Atom) *html.Node {
	if node.Type == html.ElementNode && node.DataAtom == a {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(node *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			sb.WriteString("\n")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return strings.TrimSpace(sb.String())
}

// columnLess orders numeric keys numerically and everything else lexically
func columnLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// normalizeRow puts cell text in Unicode NFC so decomposed accents from PDF
// text compare equal to typed text
func normalizeRow(row []string) []string {
	for i, cell := range row {
		row[i] = norm.NFC.String(cell)
	}
	return row
}
