package tabular

import (
	"log/slog"
)

// Extract decodes an uploaded buffer into raw string grids. The HTML marker
// walk can yield several named tables, one per employee section; every other
// path yields at most one unnamed table. Decode failures degrade through the
// generic HTML table scan down to an empty result. Extract never returns an
// error and never panics.
func Extract(logger *slog.Logger, data []byte, filename string) []NamedTable {
	if logger == nil {
		logger = slog.Default()
	}
	format := Detect(data, filename)
	logger = logger.With(
		slog.String("filename", filename),
		slog.String("format", format.String()))

	if len(data) == 0 {
		logger.Warn("empty upload buffer")
		return nil
	}

	switch format {
	case FormatHTMLDisguised:
		return extractMarkup(logger, data)
	case FormatDelimited:
		grid, err := decodeDelimited(data, filename)
		if err != nil {
			logger.Warn("delimited decode failed, falling back to table scan",
				slog.String("error", err.Error()))
			return genericScan(logger, data)
		}
		return single(grid)
	case FormatOOXML:
		grid, err := decodeWorkbook(data)
		if err != nil {
			logger.Warn("workbook decode failed, falling back to table scan",
				slog.String("error", err.Error()))
			return genericScan(logger, data)
		}
		return single(grid)
	case FormatLegacyBinary:
		grid, err := decodeLegacyWorkbook(data)
		if err != nil {
			logger.Warn("legacy workbook decode failed, falling back to table scan",
				slog.String("error", err.Error()))
			return genericScan(logger, data)
		}
		return single(grid)
	default:
		return genericScan(logger, data)
	}
}

// extractMarkup handles HTML-disguised exports: the structured marker walk
// first, then the first table in the document.
func extractMarkup(logger *slog.Logger, data []byte) []NamedTable {
	root, err := parseMarkup(data)
	if err != nil {
		logger.Warn("markup parse failed", slog.String("error", err.Error()))
		return nil
	}
	if sections := markedSections(root); len(sections) > 0 {
		logger.Debug("extracted marked sections", slog.Int("section_count", len(sections)))
		return sections
	}
	grid, ok := firstTable(root)
	if !ok {
		logger.Warn("no table found in markup")
		return nil
	}
	return single(grid)
}

// genericScan is the last-resort decode: treat the whole buffer as markup and
// take the first table found.
func genericScan(logger *slog.Logger, data []byte) []NamedTable {
	root, err := parseMarkup(data)
	if err != nil {
		logger.Warn("generic table scan failed", slog.String("error", err.Error()))
		return nil
	}
	grid, ok := firstTable(root)
	if !ok {
		logger.Warn("generic table scan found no table")
		return nil
	}
	logger.Debug("generic table scan succeeded", slog.Int("row_count", len(grid)))
	return single(grid)
}

func single(grid RawTable) []NamedTable {
	if grid.IsEmpty() {
		return nil
	}
	return []NamedTable{{Table: grid}}
}
