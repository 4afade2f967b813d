package util

import (
	"fmt"
	"net/url"
	"strings"

	"newsfeed/internal/pkg/consts"
)

// DefaultAuthorName is used when a post is created without an author.
const DefaultAuthorName = consts.DefaultAuthorName

var trendingKeywords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(consts.TrendingTags))
	for _, t := range consts.TrendingTags {
		m[t] = struct{}{}
	}
	return m
}()

// Username derives a handle from a display name: lowercase with all whitespace removed.
func Username(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// AvatarURL returns the deterministic initials avatar for name.
func AvatarURL(name string) string {
	return consts.AvatarURLPrefix + EncodeURIComponent(name)
}

// EncodeURIComponent percent-encodes s with %20 for spaces.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ReadTime estimates reading time from space separated words, rounded up.
func ReadTime(body string) string {
	words := len(strings.Split(body, " "))
	minutes := (words + consts.WordsPerMinute - 1) / consts.WordsPerMinute
	return fmt.Sprintf("%d min", minutes)
}

// IsTrending reports whether a new post starts out trending.
func IsTrending(body string, tags []string) bool {
	if UTF16Len(body) > consts.TrendingBodyLength {
		return true
	}
	for _, tag := range tags {
		if _, ok := trendingKeywords[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}

// StringOr returns *p when it is non-nil, otherwise def.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
