package db

import (
	"testing"

	"server/config"
)

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blog.db", "blog.db?_foreign_keys=on"},
		{"file::memory:", "file::memory:?_foreign_keys=on"},
		{"file:blog.db?cache=shared", "file:blog.db?cache=shared&_foreign_keys=on"},
		{"file::memory:?_foreign_keys=on", "file::memory:?_foreign_keys=on"},
		{"file::memory:?_foreign_keys=off", "file::memory:?_foreign_keys=off"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInitEnforcesForeignKeys(t *testing.T) {
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file::memory:"
	Init()

	var enabled int
	if err := Instance.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys pragma = %d, want 1", enabled)
	}
}
