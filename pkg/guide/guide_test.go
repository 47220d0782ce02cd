package guide

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGuide(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"FirstHeading", "# Phase 1: Concept & Strategy\n## Later\n", "Phase 1: Concept & Strategy"},
		{"SkipsPreamble", "intro text\n\n  ### Deep heading  \n# second\n", "Deep heading"},
		{"NoHeading", "just text\nStep 1: do it\n", HeadingMissing},
		{"CRLF", "# Windows Guide\r\nbody\r\n", "Windows Guide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Heading(writeGuide(t, tt.content)))
		})
	}

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, HeadingNotFound, Heading(filepath.Join(t.TempDir(), "absent.md")))
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		assert.Equal(t, HeadingUnreadable, Heading(writeGuide(t, "\xff\xfe broken\n# Title\n")))
	})

	t.Run("Directory", func(t *testing.T) {
		assert.Equal(t, HeadingNotFound, Heading(t.TempDir()))
	})
}

func TestPreview(t *testing.T) {
	t.Run("TruncatesLongGuide", func(t *testing.T) {
		got := Preview(writeGuide(t, numberedLines(45)), DefaultPreviewLines)
		lines := strings.Split(got, "\n")
		require.Len(t, lines, 31)
		assert.Equal(t, "line 1", lines[0])
		assert.Equal(t, "line 30", lines[29])
		assert.Equal(t, PreviewContinuation, lines[30])
	})

	t.Run("ShortGuideHasNoMarker", func(t *testing.T) {
		got := Preview(writeGuide(t, numberedLines(10)), DefaultPreviewLines)
		lines := strings.Split(got, "\n")
		require.Len(t, lines, 10)
		assert.NotContains(t, got, PreviewContinuation)
	})

	t.Run("ExactBoundHasNoMarker", func(t *testing.T) {
		got := Preview(writeGuide(t, numberedLines(30)), 30)
		assert.NotContains(t, got, PreviewContinuation)
	})

	t.Run("DefaultBound", func(t *testing.T) {
		got := Preview(writeGuide(t, numberedLines(45)), 0)
		assert.Len(t, strings.Split(got, "\n"), DefaultPreviewLines+1)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, PreviewNotFound, Preview(filepath.Join(t.TempDir(), "absent.md"), 5))
	})

	t.Run("Unreadable", func(t *testing.T) {
		got := Preview(writeGuide(t, "ok\n\xff\n"), 5)
		assert.True(t, strings.HasPrefix(got, "(unable to read guide: "), got)
	})
}

func TestSteps(t *testing.T) {
	content := strings.Join([]string{
		"# Phase 2: Development Planning",
		"Step 1: Sketch the screens   ",
		"  Step 2: indented lines are ignored",
		"step 3: lowercase is ignored",
		"Some prose",
		"Step 4: Write the task board",
	}, "\n")

	steps, err := Steps(writeGuide(t, content))
	require.NoError(t, err)
	assert.Equal(t, []string{"Step 1: Sketch the screens", "Step 4: Write the task board"}, steps)

	t.Run("NoSteps", func(t *testing.T) {
		steps, err := Steps(writeGuide(t, "# Only a heading\n"))
		require.NoError(t, err)
		assert.Empty(t, steps)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Steps(filepath.Join(t.TempDir(), "absent.md"))
		assert.ErrorIs(t, err, domain.ErrGuideNotFound)
	})
}
