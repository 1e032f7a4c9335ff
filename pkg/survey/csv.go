package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Load reads survey stations from a CSV file.
// The file may start with a header row naming the columns (md, inc, az and
// optionally toolface, gamma, vibration, temp, time); without a header the
// first three columns are taken as md, inclination, azimuth.
func Load(filename string) ([]Station, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey file: %w", err)
	}
	defer file.Close()

	stations, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return stations, nil
}

// columnIndexes maps survey fields to CSV column positions; -1 means the
// column is absent.
type columnIndexes struct {
	md, inc, az, toolface, gamma, vibration, temp, timestamp int
}

func defaultColumns() columnIndexes {
	return columnIndexes{md: 0, inc: 1, az: 2, toolface: -1, gamma: -1, vibration: -1, temp: -1, timestamp: -1}
}

// Parse reads survey stations from CSV data
func Parse(r io.Reader) ([]Station, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading survey CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := defaultColumns()
	first := 0
	if isHeaderRow(records[0]) {
		cols = mapHeader(records[0])
		first = 1
	}

	var stations []Station
	for i := first; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}

		st, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		stations = append(stations, st)
	}

	return stations, nil
}

// isHeaderRow reports whether the first record looks like column names
// rather than numbers.
func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	return err != nil
}

func mapHeader(header []string) columnIndexes {
	cols := columnIndexes{md: -1, inc: -1, az: -1, toolface: -1, gamma: -1, vibration: -1, temp: -1, timestamp: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "md", "depth", "measured_depth", "measureddepth":
			cols.md = i
		case "inc", "incl", "inclination":
			cols.inc = i
		case "az", "azi", "azimuth":
			cols.az = i
		case "tf", "toolface", "tool_face":
			cols.toolface = i
		case "gamma", "gr":
			cols.gamma = i
		case "vib", "vibration":
			cols.vibration = i
		case "temp", "tooltemp", "tool_temp", "temperature":
			cols.temp = i
		case "time", "timestamp":
			cols.timestamp = i
		}
	}
	return cols
}

func parseRecord(record []string, cols columnIndexes) (Station, error) {
	var st Station

	md, err := floatAt(record, cols.md)
	if err != nil {
		return st, fmt.Errorf("measured depth: %w", err)
	}
	inc, err := floatAt(record, cols.inc)
	if err != nil {
		return st, fmt.Errorf("inclination: %w", err)
	}
	az, err := floatAt(record, cols.az)
	if err != nil {
		return st, fmt.Errorf("azimuth: %w", err)
	}

	st.MeasuredDepth = md
	st.Inclination = inc
	st.Azimuth = az

	if v, err := floatAt(record, cols.toolface); err == nil {
		st.ToolFace = v
	}
	if v, err := floatAt(record, cols.gamma); err == nil {
		st.Gamma = v
	}
	if v, err := floatAt(record, cols.vibration); err == nil {
		st.Vibration = v
	}
	if v, err := floatAt(record, cols.temp); err == nil {
		st.ToolTemp = v
		st.HasToolTemp = true
	}
	if cols.timestamp >= 0 && cols.timestamp < len(record) {
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(record[cols.timestamp])); err == nil {
			st.Timestamp = ts
		}
	}

	return st, nil
}

var errMissingColumn = fmt.Errorf("column missing")

func floatAt(record []string, idx int) (float64, error) {
	if idx < 0 || idx >= len(record) {
		return 0, errMissingColumn
	}
	field := strings.TrimSpace(record[idx])
	if field == "" {
		return 0, errMissingColumn
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", field)
	}
	return v, nil
}
