package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// listMarkerPattern matches a leading numbered-list marker: one or more
// digits, optional whitespace, an optional separator (".", ")" or "-"),
// optional whitespace. Anchored to the line start only.
var listMarkerPattern = regexp.MustCompile(`^\d+\s*[.)-]?\s*`)

// memeImageBaseSeed anchors the deterministic placeholder image derivation.
// The URLs are cosmetic filler for items lacking real imagery.
const memeImageBaseSeed = 100

// CleanLine strips a leading list marker from one line of model output
func CleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	return strings.TrimSpace(listMarkerPattern.ReplaceAllString(trimmed, ""))
}

// ParseResponse splits the model's raw numbered-list text into discrete
// items. Lines that are empty, or become empty after marker stripping, are
// dropped; surviving lines are renumbered contiguously from 1.
func ParseResponse(raw string, contentType ContentType) []GeneratedItem {
	items := []GeneratedItem{}

	for _, line := range strings.Split(raw, "\n") {
		cleaned := CleanLine(line)
		if cleaned == "" {
			continue
		}

		item := GeneratedItem{
			ID:      strconv.Itoa(len(items) + 1),
			Type:    contentType,
			Content: cleaned,
		}
		if contentType == ContentTypeMeme {
			item.ImageURL = memeImageURL(len(items))
		}

		items = append(items, item)
	}

	return items
}

// memeImageURL derives a stable placeholder image for the item at the given
// zero-based position
func memeImageURL(position int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/600/400", memeImageBaseSeed+position)
}
