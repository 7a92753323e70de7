// Package exporter serializes canonical records as delimited text in the
// stable 15-field schema order. Where the bytes end up (download endpoint,
// file on disk) is the calling collaborator's business; this package only
// writes to an io.Writer.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"paymerge/pkg/contracts/domain"
)

// WriteOptions configures record serialization.
type WriteOptions struct {
	// BOMPrefix prepends a UTF-8 BOM so spreadsheet applications pick the
	// right encoding.
	BOMPrefix bool
	// OmitHeader drops the header row, for appending to an existing
	// export.
	OmitHeader bool
}

// WriteRecords writes canonical records to w as CSV in schema order.
func WriteRecords(w io.Writer, records []domain.CanonicalRecord, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if !options.OmitHeader {
		if err := cw.Write(domain.RecordHeader()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, rec := range records {
		if err := cw.Write(rec.Fields()); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecords returns the CSV serialization of records, headered, without
// a BOM.
func MarshalRecords(records []domain.CanonicalRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, records, WriteOptions{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
