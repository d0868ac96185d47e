package clipping

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// containmentMinLength is the rune length the contained title must exceed.
	containmentMinLength = 10
	// overlapThreshold is the share of the shorter title's runes that must
	// also occur in the longer one.
	overlapThreshold = 0.85
)

var (
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
	bracketPattern     = regexp.MustCompile(`\[[^\]]*\]`)
	parenthesisPattern = regexp.MustCompile(`\([^)]*\)`)
	nonWordPattern     = regexp.MustCompile(`[^a-zA-Z0-9가-힣ㄱ-ㅎㅏ-ㅣ]`)
)

// NormalizeTitle reduces a headline to the characters that identify the story.
// Tags, [..] and (..) segments, punctuation and whitespace are removed.
func NormalizeTitle(title string) string {
	s := htmlTagPattern.ReplaceAllString(title, "")
	s = html.UnescapeString(s)
	s = bracketPattern.ReplaceAllString(s, "")
	s = parenthesisPattern.ReplaceAllString(s, "")
	return nonWordPattern.ReplaceAllString(s, "")
}

// IsSimilar reports whether two headlines likely describe the same story.
// The relation is reflexive and symmetric but not transitive.
func IsSimilar(t1, t2 string) bool {
	n1, n2 := NormalizeTitle(t1), NormalizeTitle(t2)
	if n1 == "" || n2 == "" {
		return false
	}
	if n1 == n2 {
		return true
	}

	len1, len2 := utf8.RuneCountInString(n1), utf8.RuneCountInString(n2)
	if strings.Contains(n1, n2) && len2 > containmentMinLength {
		return true
	}
	if strings.Contains(n2, n1) && len1 > containmentMinLength {
		return true
	}

	shorter, longer := n2, n1
	shorterLen := len2
	if len1 < len2 {
		shorter, longer = n1, n2
		shorterLen = len1
	}

	overlap := 0
	for _, r := range shorter {
		if strings.ContainsRune(longer, r) {
			overlap++
		}
	}
	return float64(overlap)/float64(shorterLen) > overlapThreshold
}

// CleanTitle is the display form of a headline: tags removed, entities decoded.
func CleanTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(title, "")))
}
