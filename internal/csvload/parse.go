package csvload

import (
	"regexp"
	"strings"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// lineBreak matches LF with any run of CRs in front of it. A bare CR is
// not a line break.
var lineBreak = regexp.MustCompile(`\r*\n`)

// Parse splits text into rows on line breaks and each row into cells on
// commas.
//
// Empty text produces a single row with one empty cell, and a trailing
// line break produces a final row with one empty cell.
func Parse(text string) model.Table {
	lines := lineBreak.Split(text, -1)
	table := make(model.Table, 0, len(lines))
	for _, line := range lines {
		table = append(table, strings.Split(line, ","))
	}
	return table
}
