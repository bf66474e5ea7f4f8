package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShortPrefersVersion(t *testing.T) {
	stamp(t, "v1.2.0", "abc123", "2026-01-02")
	assert.Equal(t, "v1.2.0", Short())
	assert.Equal(t, "v1.2.0 (abc123, 2026-01-02)", Long())
}

func TestShortFallsBackToCommit(t *testing.T) {
	stamp(t, "dev", "abc123", "unknown")
	assert.Equal(t, "abc123", Short())
}

func TestShortUnstamped(t *testing.T) {
	stamp(t, "dev", "unknown", "unknown")
	assert.Equal(t, "dev", Short())
}
