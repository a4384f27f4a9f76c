package lexbridge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteNDJSON writes one JSON object per record.
func WriteNDJSON(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return nil
}

// ParseNDJSON reads NDJSON records from r.
// Lines that fail to parse as JSON are skipped and reported in the error.
func ParseNDJSON(r io.Reader) ([]Record, error) {
	var recs []Record

	sc := bufio.NewScanner(r)
	// String literals can make rows long: 64 KiB initial, up to 8 MiB max.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	var badLines []string
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		// Be tolerant of a BOM on any line (most importantly line 1).
		raw = strings.TrimPrefix(raw, "\ufeff")
		if raw == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			if len(badLines) < 5 {
				badLines = append(badLines, fmt.Sprintf("L%d: %s", lineNo, raw))
			}
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return recs, err
	}
	if len(badLines) > 0 {
		return recs, fmt.Errorf("ignored %d malformed NDJSON line(s), first few: %s",
			len(badLines), strings.Join(badLines, " | "))
	}
	return recs, nil
}
