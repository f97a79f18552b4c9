package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/importer"
)

type backupService struct {
	state    StateManager
	now      func() time.Time
	observer UseCaseObserver
}

func NewBackupService(state StateManager, now func() time.Time, observers ...UseCaseObserver) BackupService {
	if now == nil {
		now = time.Now
	}
	return &backupService{
		state:    state,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export saves the document and writes the backup file into dir.
func (s *backupService) Export(ctx context.Context, dir string) (res *ExportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"dir": dir}
	defer func() {
		observe(ctx, s.observer, "backup-export", startedAt, fields, err)
	}()

	res, err = s.state.Export(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}
	res.Path = filepath.Join(dir, res.FileName)
	if err := os.WriteFile(res.Path, res.Data, 0o644); err != nil {
		return nil, fmt.Errorf("writing backup: %w", err)
	}
	fields["path"] = res.Path
	return res, nil
}

// Import validates r as a planner document and, only if it passes, replaces
// the stored document with it.
func (s *backupService) Import(ctx context.Context, r io.Reader) (doc *domain.Document, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "backup-import", startedAt, nil, err)
	}()

	parsed, err := importer.Read(r)
	if err != nil {
		return nil, err
	}
	if err := s.state.Replace(ctx, string(parsed.Body)); err != nil {
		return nil, err
	}
	return s.state.Current(), nil
}

func (s *backupService) ImportFile(ctx context.Context, path string) (*domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	doc, err := s.Import(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}
