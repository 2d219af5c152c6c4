package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extractor recovers plain text from PDF minutes. pdfcpu exposes raw
// page content streams rather than decoded text, so recovery is
// best-effort: literal strings inside text-showing operators are kept,
// everything else is dropped.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts page content from pdfPath and recovers the
// readable text in page order.
func (e *Extractor) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "pdftext-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := api.ExtractContentFile(pdfPath, tmpDir, nil, nil); err != nil {
		return "", fmt.Errorf("extract content %s: %w", filepath.Base(pdfPath), err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("read extracted content: %w", err)
	}

	// pdfcpu numbers content files by page, so name order is page order.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sortByPage(names)

	var sb strings.Builder
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b, err := os.ReadFile(filepath.Join(tmpDir, name))
		if err != nil {
			return "", fmt.Errorf("read page content %s: %w", name, err)
		}
		sb.WriteString(recoverText(b))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// sortByPage orders content file names numerically by the trailing page
// number so page 10 sorts after page 9, not after page 1.
func sortByPage(names []string) {
	pageNum := func(name string) int {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		idx := strings.LastIndexByte(base, '_')
		if idx < 0 {
			return 0
		}
		n := 0
		for _, r := range base[idx+1:] {
			if r < '0' || r > '9' {
				return 0
			}
			n = n*10 + int(r-'0')
		}
		return n
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && pageNum(names[j]) < pageNum(names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// recoverText pulls literal strings out of a raw content stream. It
// keeps balanced ( ... ) literals, honoring escapes, and separates them
// with spaces.
func recoverText(content []byte) string {
	var sb strings.Builder
	depth := 0
	escaped := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if depth == 0 {
			if ch == '(' {
				depth = 1
			}
			continue
		}

		if escaped {
			switch ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '(', ')', '\\':
				sb.WriteByte(ch)
			}
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			escaped = true
		case '(':
			depth++
			sb.WriteByte(ch)
		case ')':
			depth--
			if depth == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(ch)
			}
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
