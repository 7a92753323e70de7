package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
)

// decodeDelimited reads CSV or TSV text. Ragged rows and stray quotes are
// tolerated; cells stay strings.
func decodeDelimited(data []byte, filename string) (RawTable, error) {
	r := csv.NewReader(bytes.NewReader(stripBOM(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if strings.ToLower(filepath.Ext(filename)) == ".tsv" {
		r.Comma = '\t'
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited text: %w", err)
	}
	return RawTable(rows), nil
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
