package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	info, ok := Parse(`{"version":"v1.2.0","git_commit":"abc123","build_time":"2026-10-01T00:00:00Z","go_version":"go1.25.0"}`)
	require.True(t, ok)
	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "v1.2.0 commit abc123 built 2026-10-01T00:00:00Z (go1.25.0)", info.String())
}

func TestParse_Rejected(t *testing.T) {
	t.Parallel()

	for _, js := range []string{"", "{}", "{not json"} {
		info, ok := Parse(js)
		assert.False(t, ok, js)
		assert.Nil(t, info, js)
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	injected := Current(`{"version":"v9"}`)
	assert.Equal(t, "v9", injected.String())

	fallback := Current("")
	assert.Equal(t, runtime.Version(), fallback.GoVersion)
}

func TestInfo_StringDevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(devel)", Info{}.String())
}
