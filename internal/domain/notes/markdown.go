package notes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const markdownContentType = "text/markdown; charset=utf-8"

// ArchiveKey is the object key a note is archived under.
func ArchiveKey(note Note) string {
	return "notes/" + strconv.FormatInt(note.UserID, 10) + "/" + note.ID.String() + ".md"
}

// RenderMarkdown renders the archived form of a note.
func RenderMarkdown(note Note) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Note %s\n\n", note.ID)
	fmt.Fprintf(&b, "_Saved %s_\n\n", note.CreatedAt.UTC().Format(time.RFC3339))

	section(&b, "Summary", note.SummaryText)
	b.WriteString("## Key Takeaways\n\n")
	if len(note.Takeaways) == 0 {
		b.WriteString("_None_\n\n")
	}
	for _, item := range note.Takeaways {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	if len(note.Takeaways) > 0 {
		b.WriteString("\n")
	}
	section(&b, "Beautified", note.BeautifiedText)
	section(&b, "Original", note.RawText)
	return []byte(strings.TrimRight(b.String(), "\n") + "\n")
}

func section(b *strings.Builder, title, body string) {
	b.WriteString("## ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n")
}
