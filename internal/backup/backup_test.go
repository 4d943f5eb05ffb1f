package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wellnest.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('wellnest-data', '{"version":1}')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 10, 13, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func readValue(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var v string
	if err := db.QueryRow("SELECT value FROM kv WHERE key = 'wellnest-data'").Scan(&v); err != nil {
		t.Fatalf("failed to read value: %v", err)
	}
	return v
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want dir %s", backupPath, mgr.GetBackupDir())
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected backup name %s", name)
	}
	if got := readValue(t, backupPath); got != `{"version":1}` {
		t.Errorf("backup value = %q", got)
	}
}

func TestBackupWithNoStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing store")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock()

	var first string
	for i := 0; i < constants.MaxBackups+3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		if i == 0 {
			first = p
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Error("oldest backup should have been rotated out")
	}
}

func TestListBackups_NewestFirst(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("ListBackups on empty dir = %v, %v", backups, err)
	}

	// same second: the counter suffix decides
	fixed := time.Date(2026, 10, 13, 9, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }
	a, _ := mgr.CreateBackup()
	b, _ := mgr.CreateBackup()
	c, _ := mgr.CreateBackup()

	// unrelated files are ignored
	_ = os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600)
	_ = os.WriteFile(filepath.Join(mgr.GetBackupDir(), constants.BackupFilePrefix+"garbage.db"), []byte("x"), 0600)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	if backups[0].Path != c || backups[1].Path != b || backups[2].Path != a {
		t.Errorf("order = %s, %s, %s", backups[0].Path, backups[1].Path, backups[2].Path)
	}
	if backups[0].Size == 0 {
		t.Error("backup size not recorded")
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE kv SET value = '{"version":2}'`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := readValue(t, dbPath); got != `{"version":1}` {
		t.Errorf("restored value = %q", got)
	}
	if preRestore == "" {
		t.Fatal("expected a pre-restore backup")
	}
	if got := readValue(t, preRestore); got != `{"version":2}` {
		t.Errorf("pre-restore backup value = %q", got)
	}
}

func TestRestoreWithCorruptedBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bad := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(bad, []byte("this is not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("expected error restoring corrupted backup")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Error("expected error restoring missing backup")
	}
	if got := readValue(t, dbPath); got != `{"version":1}` {
		t.Errorf("store modified by failed restore: %q", got)
	}
}

func TestJSONStoreBackup(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "wellnest.json")
	if err := os.WriteFile(storePath, []byte(`{"wellnest-data":{"version":1}}`), 0600); err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(storePath)
	mgr.now = steppingClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup %s should keep the .json extension", backupPath)
	}

	if err := os.WriteFile(storePath, []byte(`{}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	got, _ := os.ReadFile(storePath)
	if string(got) != `{"wellnest-data":{"version":1}}` {
		t.Errorf("restored content = %s", got)
	}

	if err := os.WriteFile(storePath, []byte(`{broken`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up corrupt JSON store")
	}
}
