package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// Snapshot file names consumed by the query service.
const (
	SuppliersFile = "suppliers.json"
	AlertsFile    = "alerts.json"
	NewsFile      = "news.json"
)

// SnapshotStore writes the derived collections as flat JSON files. Each file
// is written to a run-scoped temp name and renamed into place, so a reader
// always sees either the previous or the new snapshot, never a partial one.
type SnapshotStore struct {
	dir   string
	runID string
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore targets dir; runID distinguishes temp files of
// overlapping runs.
func NewSnapshotStore(dir, runID string) *SnapshotStore {
	return &SnapshotStore{dir: dir, runID: runID}
}

// WriteSnapshot persists the three collections. Empty collections serialize
// as [] rather than null.
func (s *SnapshotStore) WriteSnapshot(_ context.Context, snap domain.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir %s: %w", s.dir, err)
	}

	suppliers := snap.Suppliers
	if suppliers == nil {
		suppliers = []domain.SupplierRecord{}
	}
	alerts := snap.Alerts
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	news := snap.News
	if news == nil {
		news = []domain.NewsItem{}
	}

	files := []struct {
		name string
		data any
	}{
		{SuppliersFile, suppliers},
		{AlertsFile, alerts},
		{NewsFile, news},
	}

	for _, f := range files {
		if err := s.writeFile(f.name, f.data); err != nil {
			return err
		}
	}
	return nil
}

func (s *SnapshotStore) writeFile(name string, data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: marshal %s: %w", name, err)
	}

	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", name, s.runID))
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", tmp, err)
	}

	final := filepath.Join(s.dir, name)
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot: rename %s: %w", final, err)
	}
	return nil
}
