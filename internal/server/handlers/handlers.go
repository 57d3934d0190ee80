// Package handlers implements the HTTP API.
package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Wesls1990/psltomtd/internal/calculator"
	"github.com/Wesls1990/psltomtd/internal/exporter"
	"github.com/Wesls1990/psltomtd/internal/importer"
	"github.com/Wesls1990/psltomtd/internal/model"
	"github.com/Wesls1990/psltomtd/internal/parser"
	"github.com/Wesls1990/psltomtd/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers API handlers
type Handlers struct {
	importer *importer.Importer
	store    *store.Store // nil disables the audit log
	preview  int
	started  time.Time
}

// New creates the handlers.
func New(imp *importer.Importer, st *store.Store, previewLines int) *Handlers {
	if previewLines <= 0 {
		previewLines = 500
	}
	return &Handlers{
		importer: imp,
		store:    st,
		preview:  previewLines,
		started:  time.Now(),
	}
}

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Parse handles POST /api/parse: one or more uploaded workbooks in the
// multipart field "files". A workbook that cannot be opened fails the
// whole request naming the file; unreadable sheets inside an otherwise
// good workbook are skipped by the importer.
func (h *Handlers) Parse(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		errorJSON(c, http.StatusBadRequest, "No files uploaded")
		return
	}

	uploadID := uuid.New().String()

	var all []model.Line
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			h.logFailure(uploadID, fh, err)
			errorJSON(c, http.StatusBadRequest, fmt.Sprintf("Failed to read %s: %v", fh.Filename, err))
			return
		}

		lines, report, err := h.importer.ParseWorkbook(fh.Filename, data)
		if err != nil {
			h.logFailure(uploadID, fh, err)
			errorJSON(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse %s: %v", fh.Filename, err))
			return
		}

		h.logImport(uploadID, fh, report)
		all = append(all, lines...)
	}

	outcome := calculator.Assign(all)

	// Cap the per-show line preview to keep the payload lean; export
	// works from the client-held copy of this response.
	for _, acc := range outcome.PerShow {
		if len(acc.Lines) > h.preview {
			acc.Lines = acc.Lines[:h.preview]
		}
	}

	c.JSON(http.StatusOK, outcome)
}

// Export handles POST /api/export: the parse-response shape back in,
// the submission pack workbook out.
func (h *Handlers) Export(c *gin.Context) {
	var payload model.ParseOutcome
	if err := c.ShouldBindJSON(&payload); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid export payload")
		return
	}
	if payload.Consolidated == nil {
		payload.Consolidated = model.NewBoxTotals()
	}

	f, err := exporter.BuildPack(payload.PerShow, payload.Consolidated)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, fmt.Sprintf("export failed: %v", err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, fmt.Sprintf("export failed: %v", err))
		return
	}

	filename := exporter.PackFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ListImports handles GET /api/imports.
func (h *Handlers) ListImports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"imports": []store.ImportLogEntry{}})
		return
	}

	entries, err := h.store.ListImportLogs(limit)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": entries})
}

// Status handles GET /api/status.
func (h *Handlers) Status(c *gin.Context) {
	totalImports := 0
	if h.store != nil {
		if n, err := h.store.CountImportLogs(); err == nil {
			totalImports = n
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"name":          "psltomtd",
		"uptimeSeconds": int(time.Since(h.started).Seconds()),
		"totalImports":  totalImports,
	})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Audit logging is best effort: a history failure must never fail a parse.

func (h *Handlers) logImport(uploadID string, fh *multipart.FileHeader, report *parser.ImportReport) {
	if h.store == nil {
		return
	}
	id, err := h.store.CreateImportLog(uploadID, fh.Filename, report.Show, fh.Size)
	if err != nil {
		log.Printf("import log create failed: %v", err)
		return
	}
	err = h.store.CompleteImportLog(id,
		report.TotalSheets, report.ImportedSheets, report.SkippedSheets,
		report.TotalRows, report.ImportedLines,
		store.ImportCompleted, "")
	if err != nil {
		log.Printf("import log update failed: %v", err)
	}
}

func (h *Handlers) logFailure(uploadID string, fh *multipart.FileHeader, cause error) {
	if h.store == nil {
		return
	}
	id, err := h.store.CreateImportLog(uploadID, fh.Filename, importer.ShowName(fh.Filename), fh.Size)
	if err != nil {
		log.Printf("import log create failed: %v", err)
		return
	}
	if err := h.store.CompleteImportLog(id, 0, 0, 0, 0, 0, store.ImportFailed, cause.Error()); err != nil {
		log.Printf("import log update failed: %v", err)
	}
}
