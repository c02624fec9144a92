package web

import (
	"fmt"
	"net/http"
	"time"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExportCSV streams the full dataset as a CSV attachment named
// nurses-<date>.csv.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.ExportCSV(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	serveAttachment(w, data, "text/csv", exportFilename("csv"))
}

// handleExportXLSX streams the full dataset as an XLSX attachment named
// nurses-<date>.xlsx.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.ExportXLSX(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	serveAttachment(w, data, xlsxContentType, exportFilename("xlsx"))
}

// exportFilename builds the attachment name with today's ISO date.
func exportFilename(ext string) string {
	return fmt.Sprintf("nurses-%s.%s", time.Now().Format("2006-01-02"), ext)
}

// serveAttachment writes a fully materialized export as a download.
func serveAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}
