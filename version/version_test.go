package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want dev", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-01"
	if got, want := GetFullVersion(), "1.2.0 (abc123, 2026-01-01)"; got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
