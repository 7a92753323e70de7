package tabular

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format classifies the decode strategy for an uploaded buffer.
type Format int

const (
	// FormatUnknown means the extension gave no hint; the buffer gets the
	// generic HTML table scan.
	FormatUnknown Format = iota
	// FormatHTMLDisguised is HTML markup exported under a legacy .xls
	// extension, the platform's usual trick for detail reports.
	FormatHTMLDisguised
	// FormatDelimited is CSV or TSV text.
	FormatDelimited
	// FormatOOXML is a real .xlsx workbook.
	FormatOOXML
	// FormatLegacyBinary is a true BIFF .xls workbook.
	FormatLegacyBinary
)

func (f Format) String() string {
	switch f {
	case FormatHTMLDisguised:
		return "html-disguised"
	case FormatDelimited:
		return "delimited"
	case FormatOOXML:
		return "ooxml"
	case FormatLegacyBinary:
		return "legacy-binary"
	default:
		return "unknown"
	}
}

// signatureWindow bounds how far into the buffer the HTML sniff looks.
const signatureWindow = 1000

// Detect picks a decode strategy from the filename extension and a sniff of
// the leading bytes. An .xls extension whose bytes open with an HTML or
// DOCTYPE signature is classified as HTML-disguised before any extension
// dispatch.
func Detect(data []byte, filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == ".xls" && hasMarkupSignature(data) {
		return FormatHTMLDisguised
	}

	switch ext {
	case ".csv", ".tsv", ".txt":
		return FormatDelimited
	case ".xlsx":
		return FormatOOXML
	case ".xls":
		return FormatLegacyBinary
	default:
		return FormatUnknown
	}
}

func hasMarkupSignature(data []byte) bool {
	window := data
	if len(window) > signatureWindow {
		window = window[:signatureWindow]
	}
	head := bytes.ToLower(window)
	return bytes.Contains(head, []byte("<html")) || bytes.Contains(head, []byte("<!doctype"))
}
