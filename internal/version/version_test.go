package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "litgen version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestFromBuildInfo(t *testing.T) {
	base := Info{Version: "v0.0.0-dev", GitCommit: "unknown", BuildDate: "unknown"}

	t.Run("fills from module and vcs", func(t *testing.T) {
		bi := &debug.BuildInfo{
			Main: debug.Module{Version: "v1.2.3"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "deadbeef"},
				{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
			},
		}
		got := fromBuildInfo(base, bi)
		assert.Equal(t, "v1.2.3", got.Version)
		assert.Equal(t, "deadbeef", got.GitCommit)
		assert.Equal(t, "2026-10-01T00:00:00Z", got.BuildDate)
	})

	t.Run("devel build keeps defaults", func(t *testing.T) {
		got := fromBuildInfo(base, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Equal(t, base, got)
	})

	t.Run("ldflags win", func(t *testing.T) {
		set := Info{Version: "v9.9.9", GitCommit: "cafe", BuildDate: "today"}
		bi := &debug.BuildInfo{
			Main:     debug.Module{Version: "v1.2.3"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
		}
		assert.Equal(t, set, fromBuildInfo(set, bi))
	})
}
