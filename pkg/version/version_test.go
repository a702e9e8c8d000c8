package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = v, commit, built
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name, version, commit, built, want string
	}{
		{"development", "0.0.0-dev", "", "", "0.0.0-dev (development)"},
		{"empty version", "", "", "", "0.0.0-dev (development)"},
		{"commit only", "1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"full", "1.2.3", "abc1234", "2025-10-23T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"},
		{"build time only", "1.2.3", "", "2025-10-23T10:20:30Z", "1.2.3 (commit: development, built at: 2025-10-23T10:20:30Z)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit, tt.built)
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}

func TestPopulateFromBuildInfo(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	populateFromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v2.1.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05+01:00"},
		},
	})

	assert.Equal(t, "2.1.0", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2026-01-02T02:04:05Z", BuildTime)
}

func TestPopulateFromBuildInfo_KeepsLdflagsVersion(t *testing.T) {
	withVersion(t, "3.0.0", "feedbee", "")

	populateFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})

	assert.Equal(t, "3.0.0", Version)
	assert.Equal(t, "feedbee", Commit)
}

func TestPopulateFromBuildInfo_DirtyDevelBuild(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	populateFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
	})

	assert.Equal(t, "0.0.0-dev-dirty", Version)
}
