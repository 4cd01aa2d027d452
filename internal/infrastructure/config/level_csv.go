package config

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// loadCSVLevel reads a grid of tile values. The first record is the top row
// of the level so files read the way the level looks. Blank cells are empty.
func (l *Loader) loadCSVLevel(name string) (*LevelData, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return parseRecords(name, records)
}

func parseRecords(name string, records [][]string) (*LevelData, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no rows", name)
	}

	width := len(records[0])
	height := len(records)
	rows := make([][]int, height)
	for i, rec := range records {
		if len(rec) != width {
			return nil, fmt.Errorf("%s: line %d has %d columns, want %d", name, i+1, len(rec), width)
		}
		row := make([]int, width)
		for col, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d column %d: %w", name, i+1, col+1, err)
			}
			row[col] = v
		}
		rows[height-1-i] = row
	}

	return &LevelData{Width: width, Height: height, Rows: rows}, nil
}
