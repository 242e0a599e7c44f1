package csvload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shinji-kodama/tnoshape/internal/model"
)

// Points converts a table of "x,y" rows into points.
//
// A first row in which neither of the first two cells is a number is
// treated as a header and skipped. Rows consisting of a single empty cell (blank lines,
// including the one produced by a trailing newline) are skipped. Cells
// beyond the second are ignored. Any other row that does not hold two
// numbers is an error naming its 1-based line.
func Points(table model.Table) ([]model.Point, error) {
	points := make([]model.Point, 0, len(table))
	for i, row := range table {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		if i == 0 && isHeader(row) {
			continue
		}

		p, err := parsePoint(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// isHeader reports whether none of the first two cells of row parse as a
// number. A row such as "1,abc" is malformed data, not a header.
func isHeader(row []string) bool {
	for _, cell := range row[:min(len(row), 2)] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return false
		}
	}
	return true
}

func parsePoint(row []string) (model.Point, error) {
	if len(row) < 2 {
		return model.Point{}, fmt.Errorf("expected x,y but got %d cell(s)", len(row))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid x coordinate %q", row[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid y coordinate %q", row[1])
	}
	return model.Point{X: x, Y: y}, nil
}
