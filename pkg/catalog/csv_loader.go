package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidCSV = errors.New("invalid catalog csv")

var requiredColumns = []string{"category", "name", "price"}

// LoadCSV reads a catalog with a header row. The category, name and price
// columns are required, location is optional, unknown columns are ignored.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidCSV, name)
		}
	}
	locationIdx, hasLocation := columns["location"]

	entries := make([]Entry, 0, 32)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, line, err)
		}
		if isBlank(record) {
			continue
		}

		field := func(idx int) string {
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		category, err := ParseCategory(field(columns["category"]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, line, err)
		}
		name := field(columns["name"])
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty name", ErrInvalidCSV, line)
		}
		price, free, err := ParsePrice(field(columns["price"]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: price %q: %w", ErrInvalidCSV, line, field(columns["price"]), err)
		}
		entry := Entry{Category: category, Name: name, Price: price, Free: free}
		if hasLocation {
			entry.Location = field(locationIdx)
		}
		entries = append(entries, entry)
	}

	log.Debugf("loaded %d catalog entries from csv", len(entries))
	return New(entries), nil
}

// LoadFile loads a CSV catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
