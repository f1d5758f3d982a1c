package store

import (
	"path/filepath"
	"testing"
	"time"

	"sherlock/internal/domain"
)

func openStore(t *testing.T) (*BoltStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "reports.db")
	st, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	return st, path
}

func TestSaveAndGetReport(t *testing.T) {
	st, _ := openStore(t)
	defer st.Close()

	saved, err := st.SaveReport(domain.Report{
		Root:      "/src",
		Extension: "rs",
		Entries: []domain.LineCount{
			{Path: "/src/b.rs", Lines: 5},
			{Path: "/src/a.rs", Lines: 3},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == 0 {
		t.Error("expected a non-zero ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := st.GetReport(saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Root != "/src" || got.Extension != "rs" || len(got.Entries) != 2 {
		t.Errorf("unexpected report: %+v", got)
	}
	if got.Total() != 8 {
		t.Errorf("expected total 8, got %d", got.Total())
	}
}

func TestGetReport_NotFound(t *testing.T) {
	st, _ := openStore(t)
	defer st.Close()

	if _, err := st.GetReport(42); err == nil {
		t.Error("expected error for missing report")
	}
}

func TestListReports_NewestFirst(t *testing.T) {
	st, _ := openStore(t)
	defer st.Close()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, root := range []string{"first", "second", "third"} {
		if _, err := st.SaveReport(domain.Report{Root: root, CreatedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatal(err)
		}
	}

	reports, err := st.ListReports()
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if reports[0].Root != "third" || reports[2].Root != "first" {
		t.Errorf("unexpected order: %s, %s, %s", reports[0].Root, reports[1].Root, reports[2].Root)
	}
}

func TestClear(t *testing.T) {
	st, _ := openStore(t)
	defer st.Close()

	if _, err := st.SaveReport(domain.Report{Root: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatal(err)
	}
	reports, err := st.ListReports()
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}

func TestSchemaVersionPersisted(t *testing.T) {
	st, path := openStore(t)
	if _, err := st.SaveReport(domain.Report{Root: "kept"}); err != nil {
		t.Fatal(err)
	}
	st.Close()

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	version, err := reopened.SchemaVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("expected schema v%d, got v%d", CurrentSchemaVersion, version)
	}
	reports, _ := reopened.ListReports()
	if len(reports) != 1 {
		t.Errorf("expected report to survive reopen, got %d", len(reports))
	}
}

func TestNewerSchemaRejected(t *testing.T) {
	st, path := openStore(t)
	if err := st.setSchemaVersion(CurrentSchemaVersion + 1); err != nil {
		t.Fatal(err)
	}
	st.Close()

	if _, err := NewBoltStore(path); err == nil {
		t.Error("expected error opening a newer schema")
	}
}
