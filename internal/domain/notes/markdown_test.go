package notes

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	id := uuid.MustParse("0b6f5f0e-4c1a-4f7e-9a51-2d3c4b5a6f70")
	note := Note{
		ID:             id,
		UserID:         12,
		RawText:        "raw\n",
		BeautifiedText: "pretty",
		SummaryText:    "summary",
		Takeaways:      []string{"first", "second"},
		CreatedAt:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	want := "# Note 0b6f5f0e-4c1a-4f7e-9a51-2d3c4b5a6f70\n\n" +
		"_Saved 2025-01-02T03:04:05Z_\n\n" +
		"## Summary\n\nsummary\n\n" +
		"## Key Takeaways\n\n- first\n- second\n\n" +
		"## Beautified\n\npretty\n\n" +
		"## Original\n\nraw\n"
	require.Equal(t, want, string(RenderMarkdown(note)))
	require.Equal(t, "notes/12/0b6f5f0e-4c1a-4f7e-9a51-2d3c4b5a6f70.md", ArchiveKey(note))
}

func TestRenderMarkdownWithoutTakeaways(t *testing.T) {
	out := string(RenderMarkdown(Note{ID: uuid.New(), Takeaways: []string{}}))
	require.Contains(t, out, "## Key Takeaways\n\n_None_\n\n")
}
