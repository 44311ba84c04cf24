// Package village turns village coordinate exports into named subregions
// nested inside their enclosing regions.
package village

import (
	"fmt"
	"strconv"
	"strings"
)

// header is the column row that marks the start of data in a village CSV
// export (the seed column is ignored).
const header = "seed;structure;x;z;details"

// Village is one parsed village row.
type Village struct {
	X       int
	Z       int
	Type    string
	Details string
}

// ParseCSV parses the semicolon-delimited village export format. The
// preamble may contain a "Sep=;" declaration, "#" comment lines, and
// blank lines, all of which are skipped wherever they appear, as is the
// header row itself. Rows with fewer than 5 fields or non-integer
// coordinates are skipped, not fatal. Only empty or whitespace-only input
// is an error.
func ParseCSV(text string) ([]Village, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("village csv is empty")
	}

	var villages []Village
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "Sep="):
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case line == header:
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) < 5 {
			continue
		}
		x, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			continue
		}
		z, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			continue
		}
		villages = append(villages, Village{
			X:       x,
			Z:       z,
			Type:    strings.TrimSpace(fields[1]),
			Details: strings.TrimSpace(fields[4]),
		})
	}
	return villages, nil
}
