package ports

import (
	"io"

	"watermetal/domain/risk"
)

// TableReader parses an uploaded dataset file into the station table.
// Implementations pick the decoder from the file name extension.
type TableReader interface {
	ReadTable(filename string, r io.Reader) (risk.Table, error)
}
