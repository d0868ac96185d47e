package reportmeta

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"presscraft/pkg/utils"
)

const (
	minTitleLineLength = 5
	maxTitleLength     = 50
)

var titleLinePattern = regexp.MustCompile(`(?im)(?:title|제목|headline)\s*:\s*(.+)$`)

// Title resolves the report title: the second "_" part of the file name,
// then a labelled title line, then the first meaningful line of text, then
// the file name itself.
func Title(fileName, text string) string {
	name := baseName(fileName)

	if parts := strings.Split(name, "_"); len(parts) >= 2 {
		if t := strings.TrimSpace(parts[1]); t != "" {
			return t
		}
	}

	for _, m := range titleLinePattern.FindAllStringSubmatch(text, -1) {
		if t := strings.TrimSpace(m[1]); t != "" {
			return t
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) > minTitleLineLength {
			return utils.TruncateRunes(line, maxTitleLength)
		}
	}

	return name
}
