// Package extract turns uploaded resume files into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nguyenthenguyen/docx"
)

const (
	TypePlainText = "text/plain"
	TypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypePDF       = "application/pdf"

	typeOctetStream = "application/octet-stream"
)

var (
	ErrUnsupportedFileType = errors.New("Unsupported file type. Please upload PDF, DOCX, or TXT files.")
	ErrPDFNotSupported     = errors.New("PDF text extraction is not supported yet. Please upload DOCX or TXT files.")
)

var extensionTypes = map[string]string{
	".txt":  TypePlainText,
	".text": TypePlainText,
	".docx": TypeDOCX,
	".pdf":  TypePDF,
}

// DetectType resolves the media type of an upload. A specific declared type
// wins; a missing or generic one falls back to content sniffing and then to
// the file extension.
func DetectType(name, declaredType string, data []byte) string {
	if declared, _, err := mime.ParseMediaType(declaredType); err == nil && declared != typeOctetStream {
		return declared
	}

	detected := mimetype.Detect(data)
	for _, known := range []string{TypeDOCX, TypePDF, TypePlainText} {
		if detected.Is(known) {
			return known
		}
	}

	if byExt, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return byExt
	}

	return detected.String()
}

// FromFile extracts the text of an uploaded resume.
func FromFile(name, declaredType string, data []byte) (string, error) {
	switch DetectType(name, declaredType, data) {
	case TypePlainText:
		return strings.ToValidUTF8(string(data), "�"), nil
	case TypeDOCX:
		text, err := docxText(data)
		if err != nil {
			return "", fmt.Errorf("reading docx %q: %w", name, err)
		}
		return text, nil
	case TypePDF:
		return "", ErrPDFNotSupported
	default:
		return "", ErrUnsupportedFileType
	}
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return documentText(doc.Editable().GetContent())
}
