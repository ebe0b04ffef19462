// Package normalize maps raw feed items into the uniform Article record.
package normalize

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dloza02/dlo-creative-lab/internal/cache"
	"github.com/dloza02/dlo-creative-lab/internal/classify"
	"github.com/dloza02/dlo-creative-lab/internal/fetch"
)

// descriptionLimit bounds the cleaned description length in runes.
const descriptionLimit = 200

const noDescription = "No description available."

// stripPolicy removes all markup. Safe for concurrent use.
var stripPolicy = bluemonday.StrictPolicy()

// Article builds the uniform record from a raw item. The id is a
// deterministic hash of the canonical link (guid fallback), so the same
// link always maps to the same id across runs.
func Article(raw fetch.RawItem) cache.Article {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = "Untitled"
	}

	published, _ := dateparse.ParseAny(raw.PubDate)

	return cache.Article{
		ID:          hashID(canonicalKey(raw)),
		Title:       title,
		Description: cleanDescription(raw.Description),
		Link:        raw.Link,
		PubDate:     raw.PubDate,
		Published:   published,
		Source:      sourceName(raw.Link),
		Category:    classify.DefaultCategory,
		IsFavorite:  false,
	}
}

func canonicalKey(raw fetch.RawItem) string {
	if raw.Link != "" {
		return raw.Link
	}
	return raw.GUID
}

// hashID is a 32-bit rolling hash over the string's code points, rendered
// in base 36. Collisions across distinct links are an accepted risk.
func hashID(s string) string {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return strconv.FormatUint(uint64(h), 36)
}

// cleanDescription strips markup, decodes entities, collapses whitespace
// and caps the length, marking truncation with an ellipsis.
func cleanDescription(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	s = truncate(s, descriptionLimit)
	if s == "" {
		return noDescription
	}
	return s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// sourceName derives a display name from the link's domain: strip a
// leading "www.", take the first DNS label, and title-case its
// hyphen-separated segments.
func sourceName(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return "Unknown Source"
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")

	segments := strings.Split(label, "-")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		r := []rune(seg)
		segments[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	name := strings.TrimSpace(strings.Join(segments, " "))
	if name == "" {
		return "Unknown Source"
	}
	return name
}
