package hnthread

import "regexp"

// Reference patterns, in priority order.
var refPatterns = []*regexp.Regexp{
	regexp.MustCompile(`id=(\d+)`),
	regexp.MustCompile(`item\?id=(\d+)`),
	regexp.MustCompile(`/items/(\d+)`),
}

// ExtractID returns the numeric item id contained in input, which may be a
// news.ycombinator.com URL, an API URL or a bare id. Input matching none of
// the known forms is returned unchanged and treated as an id.
func ExtractID(input string) string {
	for _, re := range refPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return input
}
