package reportmeta

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"presscraft/internal/entity"
	"presscraft/pkg/utils"
)

const dateLayout = "2006-01-02"

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z][A-Za-z0-9]{0,5}$`)

// Extractor derives report metadata from an uploaded file name and its text.
type Extractor struct {
	loc *time.Location
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used for the default date.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLocation sets the location today's date is taken in. Defaults to KST.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		loc: utils.GetKstTimeLocation(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails; every field ends in a default when nothing matches.
func (e *Extractor) Extract(fileName, text string) entity.ReportFileMetadata {
	date, ok := DateFromFileName(fileName)
	if !ok {
		date, ok = DateFromText(text)
	}
	if !ok {
		date = e.now().In(e.loc).Format(dateLayout)
	}

	return entity.ReportFileMetadata{
		ExtractedDate:  date,
		ExtractedTitle: Title(fileName, text),
		ArticleCount:   CountArticles(text),
	}
}

// baseName strips directories and a trailing alphabetic extension.
// Numeric suffixes such as the ".16" of "2024.03.16" are kept.
func baseName(fileName string) string {
	name := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	if ext := filepath.Ext(name); extensionPattern.MatchString(ext) {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
