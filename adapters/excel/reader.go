// Package excel decodes uploaded station datasets (Excel or CSV) and builds
// the downloadable result workbook.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"watermetal/domain/risk"
)

// RawRowData is one decoded spreadsheet row, keyed by trimmed header.
type RawRowData map[string]string

// TableData is the decoded upload before numeric validation.
type TableData struct {
	Headers []string
	Rows    []RawRowData
}

// DataReader decodes one uploaded Excel or CSV stream
type DataReader struct {
	name     string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a data reader for an upload, picking the decoder from
// the file name extension. Anything that is not .csv is treated as a workbook.
func NewDataReader(name string) *DataReader {
	ext := strings.ToLower(filepath.Ext(name))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{name: name, fileType: fileType}
}

// ReadData decodes the stream into structured format
func (r *DataReader) ReadData(src io.Reader) (*TableData, error) {
	log.Printf("[DataReader] Starting to read %s upload: %s", r.fileType, r.name)

	switch r.fileType {
	case "csv":
		return r.readCSVData(src)
	case "xlsx":
		return r.readExcelData(src)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the first worksheet into structured format
func (r *DataReader) readExcelData(src io.Reader) (*TableData, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("Excel file has no worksheets")
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] Sheet %s read in %.2fms (%d rows)", sheet, float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData(src io.Reader) (*TableData, error) {
	reader := csv.NewReader(src)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into TableData format
func (r *DataReader) processRows(rows [][]string) (*TableData, error) {
	// Extract headers from first row
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	// Extract data rows
	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRowData)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s upload processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &TableData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// Reader is the stateless ports.TableReader implementation used by the web
// app: decode the stream, then validate it into the station table.
type Reader struct{}

func (Reader) ReadTable(filename string, src io.Reader) (risk.Table, error) {
	data, err := NewDataReader(filename).ReadData(src)
	if err != nil {
		return risk.Table{}, err
	}
	return ParseTable(data)
}
