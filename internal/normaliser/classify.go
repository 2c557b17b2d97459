package normaliser

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/dslipak/pdf"
)

// MIME types the classifier gives special treatment.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeJSON = "application/json"
)

// ClassifyContent decides how an embedded binary payload is rewritten,
// based on its declared content descriptor:
//
//   - application/pdf: extracted plain text; extraction failure degrades
//     to an empty string, never an error
//   - application/json, or a file name ending in .json: decoded JSON
//     structure; a decode failure falls back to base64
//   - anything else: base64 text of the raw bytes
//
// The declared type wins over the actual bytes; see the package comment.
func ClassifyContent(mimeType, fileName string, data []byte) any {
	switch {
	case mimeType == MIMETypePDF:
		return ExtractPDFText(data)
	case mimeType == MIMETypeJSON || strings.HasSuffix(strings.ToLower(fileName), ".json"):
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return base64.StdEncoding.EncodeToString(data)
		}
		return decoded
	default:
		return base64.StdEncoding.EncodeToString(data)
	}
}

// ExtractPDFText pulls the plain text out of a PDF payload. Best-effort:
// any failure, including parser panics on malformed files, yields an
// empty string.
func ExtractPDFText(data []byte) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return ""
	}
	return buf.String()
}
