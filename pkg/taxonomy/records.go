package taxonomy

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// retainedNameClasses are name classes kept in the name table.
var retainedNameClasses = map[string]struct{}{
	"scientific name":     {},
	"common name":         {},
	"synonym":             {},
	"genbank common name": {},
	"equivalent name":     {},
	"acronym":             {},
	"genbank acronym":     {},
}

// Parse converts raw dump rows into taxonomy tables. Malformed rows are
// skipped individually.
func Parse(raw *RawRecords) *Tables {
	if raw == nil {
		raw = &RawRecords{}
	}
	return &Tables{
		Names:  ParseNames(raw.Names),
		Nodes:  ParseNodes(raw.Nodes),
		Merged: ParseMerged(raw.Merged),
	}
}

// ParseNames builds the name table from rows of names.dmp.
// Rows with less than 7 fields or with a malformed identifier are skipped.
// For scientific names the last row wins, for the preferred common name
// the first "common name" row wins.
func ParseNames(rows [][]string) map[int]*Name {
	res := make(map[int]*Name, len(rows)/2)
	var skipped int
	for _, row := range rows {
		if len(row) < 7 {
			skipped++
			continue
		}
		id, ok := parseField(row[0])
		if !ok {
			skipped++
			continue
		}
		class := strings.TrimSpace(row[6])
		if _, ok := retainedNameClasses[class]; !ok {
			continue
		}
		name := gnlib.FixUtf8(strings.Trim(row[2], "'"))

		entry, ok := res[id]
		if !ok {
			entry = &Name{}
			res[id] = entry
		}

		if class == "scientific name" {
			entry.ScientificName = name
			continue
		}
		if class == "common name" && entry.PreferredCommonName == "" {
			entry.PreferredCommonName = name
		}
		entry.CommonNames = append(entry.CommonNames, name)
	}
	logSkipped("names", skipped)
	return res
}

// ParseNodes builds the node table from rows of nodes.dmp.
// Rows with less than 5 fields or with malformed integers are skipped.
func ParseNodes(rows [][]string) map[int]Node {
	res := make(map[int]Node, len(rows))
	var skipped int
	for _, row := range rows {
		if len(row) < 5 {
			skipped++
			continue
		}
		id, ok := parseField(row[0])
		if !ok {
			skipped++
			continue
		}
		parentID, ok := parseField(row[2])
		if !ok {
			skipped++
			continue
		}
		res[id] = Node{ParentID: parentID, Rank: strings.TrimSpace(row[4])}
	}
	logSkipped("nodes", skipped)
	return res
}

// ParseMerged builds the merge table from rows of merged.dmp.
// The retired identifier is in the first field, the surviving one is in
// the third field.
func ParseMerged(rows [][]string) map[int]int {
	res := make(map[int]int, len(rows))
	var skipped int
	for _, row := range rows {
		if len(row) < 3 {
			skipped++
			continue
		}
		id, ok := parseField(row[0])
		if !ok {
			skipped++
			continue
		}
		newID, ok := parseField(row[2])
		if !ok {
			skipped++
			continue
		}
		res[id] = newID
	}
	logSkipped("merged", skipped)
	return res
}

// ParseTaxID converts a textual taxon identifier into an integer.
// Malformed input is logged and reported with false.
func ParseTaxID(s string) (int, bool) {
	id, ok := parseField(s)
	if !ok {
		slog.Warn("Malformed taxon ID", "input", s)
	}
	return id, ok
}

func parseField(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}

func logSkipped(table string, n int) {
	if n > 0 {
		slog.Debug("Skipped malformed rows", "table", table, "count", n)
	}
}
