package export

import "strings"

// ParseCSV parses header-row-driven CSV content into Rows. Field splitting is
// quote-aware (commas inside quoted fields do not split), and rows whose field
// count differs from the header are dropped without failing the rest of the
// parse, since exports routinely contain truncated trailing rows.
func ParseCSV(csvText string) []Row {
	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := splitCSVLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitCSVLine(line)
		if len(values) != len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = values[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// splitCSVLine splits one CSV line on unquoted commas, trimming each field and
// dropping the surrounding quotes.
func splitCSVLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}
