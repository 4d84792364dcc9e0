package summarizer

import (
	"regexp"
	"strings"
)

// takeawayHeading matches the first "Key Takeaways:" or "Takeaways:" heading, case-insensitively.
var takeawayHeading = regexp.MustCompile(`(?i)key takeaways:|takeaways:`)

const bulletMarker = "- "

// Segment splits generated text into a summary and takeaway items.
//
// Only the first heading splits the text. Everything after it is broken on line
// boundaries, a leading "- " bullet is dropped, and blank items are discarded.
// Text the model did not format as asked still yields a result: the whole text
// becomes the summary and the takeaway list is empty.
func Segment(text string) SummaryResult {
	loc := takeawayHeading.FindStringIndex(text)
	if loc == nil {
		return SummaryResult{SummaryText: strings.TrimSpace(text), Takeaways: []string{}}
	}
	return SummaryResult{
		SummaryText: strings.TrimSpace(text[:loc[0]]),
		Takeaways:   splitTakeaways(text[loc[1]:]),
	}
}

func splitTakeaways(body string) []string {
	lines := strings.Split(body, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		item := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
