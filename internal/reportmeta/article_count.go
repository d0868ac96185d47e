package reportmeta

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxArticleNumber = 500
	// minUnparsedLength is the text length from which at least one article is assumed.
	minUnparsedLength = 100

	joiners = ".-/:,"
)

var (
	numberHeaderPattern = regexp.MustCompile(`(?i)\bNO\b|번호|No\.`)
	copyrightPattern    = regexp.MustCompile(`(?i)ⓒ|copyright|all rights reserved`)
	reporterPattern     = regexp.MustCompile(`[가-힣]{2,4}\s?기자|(?i:reporter)`)
	emailPattern        = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	digitRunPattern     = regexp.MustCompile(`[0-9]+`)
)

// CountArticles estimates how many clippings a report lists. OCR output is
// noisy, so the result is a best guess the user can correct.
func CountArticles(text string) int {
	if n := countFromNumberColumn(text); n > 0 {
		return n
	}

	n := max(
		len(copyrightPattern.FindAllStringIndex(text, -1)),
		len(reporterPattern.FindAllStringIndex(text, -1)),
		len(emailPattern.FindAllStringIndex(text, -1)),
	)
	if n == 0 && utf8.RuneCountInString(text) > minUnparsedLength {
		return 1
	}
	return n
}

// countFromNumberColumn reads the row numbers printed after a "No"/"번호"
// column header. A clean 1..k run gives k, otherwise the number of
// distinct candidates is used.
func countFromNumberColumn(text string) int {
	loc := numberHeaderPattern.FindStringIndex(text)
	if loc == nil {
		return 0
	}

	rest := text[loc[1]:]
	seen := make(map[int]struct{})
	for _, m := range digitRunPattern.FindAllStringIndex(rest, -1) {
		if !standalone(rest, m[0], m[1]) {
			continue
		}
		n, err := strconv.Atoi(rest[m[0]:m[1]])
		if err != nil || n <= 0 || n >= maxArticleNumber {
			continue
		}
		seen[n] = struct{}{}
	}
	if len(seen) == 0 {
		return 0
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	run := 0
	for i, n := range numbers {
		if n != i+1 {
			break
		}
		run++
	}
	if run > 0 {
		return run
	}
	return len(numbers)
}

// standalone reports whether s[start:end] is a whole number of its own.
// Table pipes, brackets and list punctuation count as separators; letters,
// and separators inside dates or decimals such as 2024.03.15, do not.
func standalone(s string, start, end int) bool {
	if start > 0 {
		prev, size := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(prev) {
			return false
		}
		if strings.ContainsRune(joiners, prev) && start-size > 0 {
			if before, _ := utf8.DecodeLastRuneInString(s[:start-size]); unicode.IsDigit(before) {
				return false
			}
		}
	}
	if end < len(s) {
		next, size := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(next) {
			return false
		}
		if strings.ContainsRune(joiners, next) && end+size < len(s) {
			if after, _ := utf8.DecodeRuneInString(s[end+size:]); unicode.IsDigit(after) {
				return false
			}
		}
	}
	return true
}
