package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldomonation/manifest-updater/internal/types"
)

func TestRewriteSkipIf(t *testing.T) {
	t.Parallel()
	p := NewPatterns("17", nil)

	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{
			name:     "single deprecated clause drops the line",
			line:     "skip-if = android_version == '17'",
			expected: "",
			ok:       false,
		},
		{
			name:     "parenthesized deprecated clause drops the line",
			line:     "skip-if = (android_version == '17')",
			expected: "",
			ok:       false,
		},
		{
			name:     "one survivor loses the separator",
			line:     "skip-if = (android_version == '17') || debug",
			expected: "skip-if = debug",
			ok:       true,
		},
		{
			name:     "deprecated clause in the middle",
			line:     "skip-if = os == 'win' || android_version == '17' || debug",
			expected: "skip-if = os == 'win' || debug",
			ok:       true,
		},
		{
			name:     "deprecated clause last",
			line:     "skip-if = os == 'win' || debug || (android_version == '17')",
			expected: "skip-if = os == 'win' || debug",
			ok:       true,
		},
		{
			name:     "other versions are not touched",
			line:     "skip-if = android_version == '18'",
			expected: "skip-if = android_version == '18'",
			ok:       true,
		},
		{
			name:     "version appearing mid-clause is not a match",
			line:     "skip-if = debug && android_version == '17'",
			expected: "skip-if = debug && android_version == '17'",
			ok:       true,
		},
		{
			name:     "no deprecated clause at all",
			line:     "skip-if = os == 'linux' || debug",
			expected: "skip-if = os == 'linux' || debug",
			ok:       true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := p.RewriteSkipIf(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRewriteSkipIfClauseCount(t *testing.T) {
	t.Parallel()
	p := NewPatterns("17", nil)

	// n clauses with one deprecated clause removed yields n-1 survivors
	// joined back with the separator.
	line := "skip-if = a || (android_version == '17') || b || c"
	got, ok := p.RewriteSkipIf(line)
	require.True(t, ok)
	assert.Equal(t, "skip-if = a || b || c", got)
}

func TestRewriteManifest(t *testing.T) {
	t.Parallel()
	p := NewPatterns("17", nil)

	tests := []struct {
		name     string
		lines    []string
		action   types.Action
		expected []string
	}{
		{
			name: "untouched manifest reports no change",
			lines: []string{
				"[test_one.html]\n",
				"skip-if = debug\n",
			},
			action: types.ActionNone,
		},
		{
			name: "deprecated clause removed from directive line",
			lines: []string{
				"[test_one.html]\n",
				"skip-if = (android_version == '17') || debug\n",
				"[test_two.html]\n",
			},
			action: types.ActionRewrite,
			expected: []string{
				"[test_one.html]\n",
				"skip-if = debug\n",
				"[test_two.html]\n",
			},
		},
		{
			name: "line with only deprecated clauses is dropped",
			lines: []string{
				"[test_one.html]\n",
				"skip-if = android_version == '17'\n",
				"\n",
			},
			action: types.ActionRewrite,
			expected: []string{
				"[test_one.html]\n",
				"\n",
			},
		},
		{
			name: "non-directive lines pass through byte-for-byte",
			lines: []string{
				"# comment with trailing spaces   \n",
				"skip-if = android_version == '17' || debug\n",
			},
			action: types.ActionRewrite,
			expected: []string{
				"# comment with trailing spaces   \n",
				"skip-if = debug\n",
			},
		},
		{
			name: "final line without terminator",
			lines: []string{
				"[test_one.html]\n",
				"skip-if = a || android_version == '17'",
			},
			action: types.ActionRewrite,
			expected: []string{
				"[test_one.html]\n",
				"skip-if = a",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome := p.RewriteManifest(tt.lines)
			assert.Equal(t, tt.action, outcome.Action)
			if tt.action == types.ActionRewrite {
				assert.Equal(t, tt.expected, outcome.Lines)
			}
		})
	}
}

func TestRewriteManifestIdempotent(t *testing.T) {
	t.Parallel()
	p := NewPatterns("17", nil)

	lines := []string{
		"[test_one.html]\n",
		"skip-if = (android_version == '17') || debug\n",
		"[test_two.html]\n",
		"skip-if = android_version == '17'\n",
	}

	first := p.RewriteManifest(lines)
	require.Equal(t, types.ActionRewrite, first.Action)

	second := p.RewriteManifest(first.Lines)
	assert.Equal(t, types.ActionNone, second.Action)
}

func TestRewriteManifestCustomVersion(t *testing.T) {
	t.Parallel()
	p := NewPatterns("19", nil)

	got, ok := p.RewriteSkipIf("skip-if = android_version == '19' || debug")
	require.True(t, ok)
	assert.Equal(t, "skip-if = debug", got)

	// the default version is no longer a match
	got, ok = p.RewriteSkipIf("skip-if = android_version == '17' || debug")
	require.True(t, ok)
	assert.Equal(t, "skip-if = android_version == '17' || debug", got)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "empty content", content: "", expected: nil},
		{name: "terminated lines", content: "a\nb\n", expected: []string{"a\n", "b\n"}},
		{name: "unterminated final line", content: "a\nb", expected: []string{"a\n", "b"}},
		{name: "blank lines survive", content: "a\n\n\n", expected: []string{"a\n", "\n", "\n"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := SplitLines(tt.content)
			assert.Equal(t, tt.expected, lines)
			assert.Equal(t, tt.content, JoinLines(lines))
		})
	}
}
