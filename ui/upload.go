package ui

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"watermetal/domain/core"
	"watermetal/internal/session"
)

// handleUpload ingests a dataset file, runs the assessment, and binds the
// result to the browser session.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Starting file upload")

	maxBytes := a.maxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("dataset")
	if err != nil {
		a.uploadError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		a.uploadError(w, r, http.StatusBadRequest,
			fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit", float64(header.Size)/(1024*1024), a.maxUploadMB))
		return
	}

	filename := header.Filename
	validExtensions := []string{".xlsx", ".xls", ".csv"}
	hasValidExtension := false
	for _, ext := range validExtensions {
		if strings.HasSuffix(strings.ToLower(filename), ext) {
			hasValidExtension = true
			break
		}
	}
	if !hasValidExtension {
		a.uploadError(w, r, http.StatusBadRequest, "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed")
		return
	}

	// MIME types are unreliable across browsers, so a mismatch only warns.
	contentType := header.Header.Get("Content-Type")
	if !isSpreadsheetMime(contentType) {
		a.logger.Warn("Unexpected MIME type %q for file %s", contentType, filename)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		a.uploadError(w, r, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	table, err := a.reader.ReadTable(filename, bytes.NewReader(raw))
	if err != nil {
		a.logger.Warn("Upload rejected: %v", err)
		a.uploadError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	bundle, err := a.pipeline.Run(r.Context(), table)
	if err != nil {
		a.logger.Error("Assessment failed: %v", err)
		a.uploadError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	fingerprint := core.NewFingerprint(raw)
	sid := a.sessionID(w, r)
	a.store.Put(&session.Session{
		ID:          sid,
		Filename:    filename,
		Fingerprint: fingerprint,
		UploadedAt:  time.Now(),
		Table:       table,
		Bundle:      bundle,
	})

	a.logger.Info("Dataset %s ingested: %d stations (fingerprint %s)", filename, table.Len(), fingerprint.Short())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// uploadError re-renders the dashboard with the rejection message, keeping
// whatever dataset the session already carried.
func (a *App) uploadError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := a.dashboardData(a.currentSession(r), msg)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	if err := a.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		a.logger.Error("Template error: %v", err)
	}
}

func isSpreadsheetMime(contentType string) bool {
	validMimeTypes := []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", // .xlsx
		"application/vnd.ms-excel", // .xls
		"text/csv",
		"application/csv",
		"text/plain", // Some CSV files might be detected as plain text
	}
	for _, mimeType := range validMimeTypes {
		if contentType == mimeType {
			return true
		}
	}
	return strings.Contains(contentType, "excel") || strings.Contains(contentType, "csv")
}
