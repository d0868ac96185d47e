package textextract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const docxBodyPath = "word/document.xml"

// extractDocx reads the body of a .docx package. Runs are joined,
// paragraphs and breaks become newlines, tabs are kept.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx %s: %w", docxBodyPath, err)
	}
	defer doc.Close()

	return bodyText(doc.Editable().GetContent())
}

// bodyText walks the WordprocessingML of a document body.
func bodyText(content string) (string, error) {
	var sb strings.Builder
	dec := xml.NewDecoder(strings.NewReader(content))
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", docxBodyPath, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
