package scout

import "encoding/json"

// HarvestLinks merges a page's three link sources into one ordered,
// deduplicated candidate list. Concatenation order is significant
// because it decides which URL wins a platform slot downstream: anchor
// links first, then platform-region links, then links extracted from
// structured-data blocks.
//
// Deduplication removes exact string duplicates, keeping the first
// occurrence. URLs are not canonicalized; two URLs differing only in a
// trailing slash or query string are distinct.
func HarvestLinks(sig *PageSignal) []string {
	if sig == nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)

	add := func(url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		links = append(links, url)
	}

	for _, u := range sig.AnchorLinks {
		add(u)
	}
	for _, u := range sig.PlatformLinks {
		add(u)
	}
	for _, block := range sig.StructuredData {
		for _, u := range structuredLinks(block) {
			add(u)
		}
	}

	return links
}

// structuredLinks extracts sameAs URLs from a single structured-data
// block. The block may be a single record or an array of records, and
// sameAs may be a single string or a list. A malformed block yields no
// links; it never aborts extraction of other blocks.
func structuredLinks(block string) []string {
	var doc any
	if err := json.Unmarshal([]byte(block), &doc); err != nil {
		return nil
	}

	var links []string
	switch v := doc.(type) {
	case map[string]any:
		links = append(links, sameAsValues(v)...)
	case []any:
		for _, item := range v {
			if record, ok := item.(map[string]any); ok {
				links = append(links, sameAsValues(record)...)
			}
		}
	}
	return links
}

// sameAsValues normalizes a record's sameAs property to zero-or-more
// URL strings, in source order.
func sameAsValues(record map[string]any) []string {
	switch v := record["sameAs"].(type) {
	case string:
		return []string{v}
	case []any:
		var urls []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				urls = append(urls, s)
			}
		}
		return urls
	default:
		return nil
	}
}
