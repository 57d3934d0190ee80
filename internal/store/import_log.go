package store

import (
	"fmt"
	"time"
)

// Import log statuses
const (
	ImportProcessing = "processing"
	ImportCompleted  = "completed"
	ImportFailed     = "failed"
)

// ImportLogEntry one recorded workbook import
type ImportLogEntry struct {
	ID             int64     `json:"id"`
	UploadID       string    `json:"uploadId"`
	Filename       string    `json:"filename"`
	Show           string    `json:"show"`
	FileSize       int64     `json:"fileSize"`
	TotalSheets    int       `json:"totalSheets"`
	ImportedSheets int       `json:"importedSheets"`
	SkippedSheets  int       `json:"skippedSheets"`
	TotalRows      int       `json:"totalRows"`
	ImportedLines  int       `json:"importedLines"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateImportLog records the start of a workbook import, returning its id.
func (s *Store) CreateImportLog(uploadID, filename, show string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (upload_id, filename, show_name, file_size, status)
		VALUES (?, ?, ?, ?, ?)
	`, uploadID, filename, show, fileSize, ImportProcessing)
	if err != nil {
		return 0, fmt.Errorf("create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog finalizes an import log with its counts and status.
func (s *Store) CompleteImportLog(id int64, totalSheets, importedSheets, skippedSheets, totalRows, importedLines int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_sheets = ?,
			imported_sheets = ?,
			skipped_sheets = ?,
			total_rows = ?,
			imported_lines = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalSheets, importedSheets, skippedSheets, totalRows, importedLines, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("complete import log: %w", err)
	}
	return nil
}

// ListImportLogs returns the most recent imports, newest first.
func (s *Store) ListImportLogs(limit int) ([]ImportLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, upload_id, filename, show_name, file_size,
			total_sheets, imported_sheets, skipped_sheets,
			total_rows, imported_lines, status, error_message, created_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list import logs: %w", err)
	}
	defer rows.Close()

	entries := []ImportLogEntry{}
	for rows.Next() {
		var e ImportLogEntry
		if err := rows.Scan(
			&e.ID, &e.UploadID, &e.Filename, &e.Show, &e.FileSize,
			&e.TotalSheets, &e.ImportedSheets, &e.SkippedSheets,
			&e.TotalRows, &e.ImportedLines, &e.Status, &e.ErrorMessage, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan import log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountImportLogs total recorded imports.
func (s *Store) CountImportLogs() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM import_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count import logs: %w", err)
	}
	return n, nil
}
