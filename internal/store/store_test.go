package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImportLogLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateImportLog("upload-1", "Spring Tour.xlsx", "Spring Tour", 1024)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CompleteImportLog(id, 3, 2, 1, 40, 38, ImportCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}

	entries, err := s.ListImportLogs(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.UploadID != "upload-1" || e.Filename != "Spring Tour.xlsx" || e.Show != "Spring Tour" {
		t.Fatalf("entry: %+v", e)
	}
	if e.TotalSheets != 3 || e.ImportedSheets != 2 || e.SkippedSheets != 1 {
		t.Fatalf("sheet counts: %+v", e)
	}
	if e.ImportedLines != 38 || e.Status != ImportCompleted {
		t.Fatalf("entry: %+v", e)
	}
}

func TestListImportLogs_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"first.xlsx", "second.xlsx", "third.xlsx"} {
		if _, err := s.CreateImportLog("u", name, "", 0); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	entries, err := s.ListImportLogs(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Filename != "third.xlsx" {
		t.Fatalf("order: %+v", entries)
	}

	n, err := s.CountImportLogs()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d", n)
	}
}

func TestFailedImportRecorded(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateImportLog("u", "broken.xlsx", "broken", 12)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CompleteImportLog(id, 0, 0, 0, 0, 0, ImportFailed, "open workbook broken.xlsx: zip: not a valid zip file"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	entries, err := s.ListImportLogs(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].Status != ImportFailed || entries[0].ErrorMessage == "" {
		t.Fatalf("entry: %+v", entries[0])
	}
}
