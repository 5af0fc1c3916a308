package pdf

import (
	"bytes"
	"strings"
)

// Kind classifies a PDF as text-based, image-based, or both.
type Kind string

// PDF content kinds reported by EstimateType.
const (
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindMixed   Kind = "mixed"
	KindUnknown Kind = "unknown"
)

// typeProbeBytes bounds how much of the document EstimateType inspects.
const typeProbeBytes = 10 * 1024

// IsPDF reports whether a file looks like a PDF by content type or extension.
func IsPDF(filename, contentType string) bool {
	return contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// EstimateType guesses whether a PDF carries embedded text, images, or both,
// by probing the first 10KB for font and image object markers. Documents with
// neither marker are assumed text-based.
func EstimateType(data []byte) Kind {
	if len(data) == 0 {
		return KindUnknown
	}
	probe := data
	if len(probe) > typeProbeBytes {
		probe = probe[:typeProbeBytes]
	}

	hasTextStreams := bytes.Contains(probe, []byte("/Type/Font")) ||
		bytes.Contains(probe, []byte("/Type /Font")) ||
		bytes.Contains(probe, []byte("BT")) ||
		bytes.Contains(probe, []byte("Tj"))
	hasImages := bytes.Contains(probe, []byte("/Type/XObject")) ||
		bytes.Contains(probe, []byte("/Subtype/Image")) ||
		bytes.Contains(probe, []byte("/Subtype /Image"))

	switch {
	case hasTextStreams && hasImages:
		return KindMixed
	case hasImages:
		return KindImage
	default:
		return KindText
	}
}
