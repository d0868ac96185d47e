package reportmeta

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type tokenPattern struct {
	re        *regexp.Regexp
	shortYear bool
}

var fileNameDatePatterns = []tokenPattern{
	{re: regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)},
	{re: regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`), shortYear: true},
	{re: regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})$`)},
	{re: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)},
}

var textDatePattern = regexp.MustCompile(`(\d{4})[.-](\d{1,2})[.-](\d{1,2})|(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)

// DateFromFileName looks for a date token among the "_" separated parts of
// the file name. A report file is dated the day after the release ran, so
// the parsed date is moved back one calendar day.
func DateFromFileName(fileName string) (string, bool) {
	for _, token := range strings.Split(baseName(fileName), "_") {
		token = strings.TrimSpace(token)
		for _, p := range fileNameDatePatterns {
			m := p.re.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			year, _ := strconv.Atoi(m[1])
			if p.shortYear {
				year += 2000
			}
			d, ok := validDate(year, m[2], m[3])
			if !ok {
				continue
			}
			return d.AddDate(0, 0, -1).Format(dateLayout), true
		}
	}
	return "", false
}

// DateFromText uses the first date written in the text. A valid calendar
// date is returned as YYYY-MM-DD, which leaves dashed dates verbatim; an
// impossible one such as 2024-2-30 is returned exactly as written.
func DateFromText(text string) (string, bool) {
	m := textDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	y, mo, d := m[1], m[2], m[3]
	if y == "" {
		y, mo, d = m[4], m[5], m[6]
	}
	year, _ := strconv.Atoi(y)
	if date, ok := validDate(year, mo, d); ok {
		return date.Format(dateLayout), true
	}
	return m[0], true
}

// validDate rejects dates that time.Date would normalize, such as 02-30.
func validDate(year int, month, day string) (time.Time, bool) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
