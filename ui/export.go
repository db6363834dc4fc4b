package ui

import (
	"bytes"
	"net/http"
	"strconv"

	"watermetal/adapters/chart"
	"watermetal/adapters/excel"
	"watermetal/adapters/report"
	"watermetal/internal/session"
)

// Download filenames for the generated artifacts.
const (
	docxFilename = "WaterMetal_Report.docx"
	pdfFilename  = "WaterMetal_Report.pdf"
	xlsxFilename = "WaterMetal_Report.xlsx"
)

func (a *App) handleDownloadDocx(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.requireBundle(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteDocx(&buf, sess.Bundle); err != nil {
		a.logger.Error("Word report failed: %v", err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	sendAttachment(w, &buf, docxFilename,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
}

func (a *App) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.requireBundle(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, sess.Bundle); err != nil {
		a.logger.Error("PDF report failed: %v", err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	sendAttachment(w, &buf, pdfFilename, "application/pdf")
}

func (a *App) handleDownloadXlsx(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.requireBundle(w, r)
	if !ok {
		return
	}

	f, err := excel.BuildWorkbook(sess.Table, sess.Bundle)
	if err != nil {
		a.logger.Error("Workbook build failed: %v", err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		a.logger.Error("Workbook write failed: %v", err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	sendAttachment(w, buf, xlsxFilename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (a *App) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.requireBundle(w, r)
	if !ok {
		return
	}
	if len(sess.Bundle.Projections) == 0 {
		http.Error(w, "no projections available", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := chart.WriteScatterPNG(&buf, sess.Bundle.Projections); err != nil {
		a.logger.Error("Scatter render failed: %v", err)
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// requireBundle resolves the request's session and insists on a computed
// assessment being present.
func (a *App) requireBundle(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := a.currentSession(r)
	if sess == nil || sess.Bundle == nil {
		http.Error(w, "no dataset uploaded", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func sendAttachment(w http.ResponseWriter, buf *bytes.Buffer, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
