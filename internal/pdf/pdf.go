// Package pdf converts a raw PDF byte stream into plain text. The direct
// method scans the document for embedded literal text operators and inflates
// compressed content streams; an OCR method exists as an extension point for
// scanned documents. Extraction is a pure transform over the input bytes and
// never returns a Go error for malformed input: every outcome is a structured
// Result.
package pdf

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// MinTextLength is the heuristic floor below which direct extraction is
// considered to have found no usable content. Overridable via Options.
const MinTextLength = 50

// Method selects the extraction strategy.
type Method string

// Extraction methods. MethodAuto runs direct extraction and falls back to OCR
// when the result is below the usable-content floor.
const (
	MethodAuto   Method = "auto"
	MethodDirect Method = "direct"
	MethodOCR    Method = "ocr"
)

// Options configures an extraction run.
type Options struct {
	Method            Method
	EnableOCRFallback bool
	// MinTextLength overrides the usable-content floor when > 0.
	MinTextLength int
}

// DefaultOptions returns the auto method with OCR fallback enabled.
func DefaultOptions() Options {
	return Options{Method: MethodAuto, EnableOCRFallback: true}
}

// Metadata describes how a Result was produced.
type Metadata struct {
	PageCount int    `json:"pageCount"`
	Method    string `json:"method"`
	HasImages bool   `json:"hasImages"`
	HasText   bool   `json:"hasText"`
}

// Result is the structured outcome of an extraction. Success is false when no
// usable text was recovered; Err then carries the reason.
type Result struct {
	Success  bool     `json:"success"`
	Text     string   `json:"text"`
	Pages    []string `json:"pages"`
	Metadata Metadata `json:"metadata"`
	Err      string   `json:"error,omitempty"`
}

func failure(err string) Result {
	return Result{Pages: []string{}, Err: err}
}

// Extract runs text extraction over data according to opts.
func Extract(data []byte, opts Options) Result {
	if opts.Method == "" {
		opts.Method = MethodAuto
	}
	floor := opts.MinTextLength
	if floor <= 0 {
		floor = MinTextLength
	}

	switch opts.Method {
	case MethodAuto:
		res := extractDirect(data, floor)
		if res.Success && len(strings.TrimSpace(res.Text)) >= floor {
			return res
		}
		if opts.EnableOCRFallback {
			return extractOCR(data)
		}
		return res
	case MethodDirect:
		return extractDirect(data, floor)
	case MethodOCR:
		return extractOCR(data)
	default:
		return failure(fmt.Sprintf("unsupported extraction method: %s", opts.Method))
	}
}

var (
	literalStringPattern = regexp.MustCompile(`\(([^)]+)\)`)
	streamPattern        = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// extractDirect scans the byte stream for literal text operators and
// decompresses Flate content streams, concatenating the printable text found
// in either. Success requires the combined text to reach the floor.
func extractDirect(data []byte, floor int) Result {
	var b strings.Builder

	for _, m := range literalStringPattern.FindAllSubmatch(data, -1) {
		text := unescapeLiteral(string(m[1]))
		if len(text) > 1 {
			b.WriteString(text)
			b.WriteByte(' ')
		}
	}

	for _, m := range streamPattern.FindAllSubmatch(data, -1) {
		decoded, ok := inflateStream(m[1])
		if !ok {
			decoded = m[1]
		}
		text := printableRuns(decoded)
		if len(text) > 10 {
			b.WriteString(text)
			b.WriteByte(' ')
		}
	}

	text := strings.TrimSpace(whitespacePattern.ReplaceAllString(stripNonPrintable(b.String()), " "))
	hasText := len(text) >= floor

	res := Result{
		Success: hasText,
		Text:    text,
		Pages:   []string{text},
		Metadata: Metadata{
			PageCount: 1,
			Method:    "direct",
			HasImages: bytes.Contains(data, []byte("/Subtype/Image")) || bytes.Contains(data, []byte("/Subtype /Image")),
			HasText:   hasText,
		},
	}
	if !hasText {
		res.Err = "no usable text recovered by direct extraction"
	}
	return res
}

// extractOCR is the page-rasterization extension point. Rasterizing PDF pages
// requires a renderer this pipeline does not ship with, so the method reports
// a clear, recoverable failure rather than guessing.
func extractOCR(_ []byte) Result {
	res := failure("OCR extraction not available: page rasterization is not configured; use a text-based PDF")
	res.Metadata.Method = "ocr"
	return res
}

// unescapeLiteral resolves the escape sequences PDF literal strings use.
func unescapeLiteral(s string) string {
	replacer := strings.NewReplacer(
		`\n`, " ",
		`\r`, " ",
		`\t`, " ",
		`\(`, "(",
		`\)`, ")",
		`\\`, "",
	)
	return strings.TrimSpace(replacer.Replace(s))
}

// inflateStream tries zlib first (the common FlateDecode envelope), then raw
// deflate. Reads are capped to bound decompression of hostile input.
func inflateStream(data []byte) ([]byte, bool) {
	const maxInflated = 8 << 20

	if zr, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		out, err := io.ReadAll(io.LimitReader(zr, maxInflated))
		_ = zr.Close()
		if err == nil && len(out) > 0 {
			return out, true
		}
	}

	fr := flate.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(io.LimitReader(fr, maxInflated))
	_ = fr.Close()
	if err == nil && len(out) > 0 {
		return out, true
	}
	return nil, false
}

// printableRuns keeps printable-ASCII runs of decoded stream bytes, collapsing
// everything else to single spaces.
func printableRuns(data []byte) string {
	var b strings.Builder
	lastSpace := true
	for _, c := range data {
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func stripNonPrintable(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r <= 0x7E || r == '\n' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
