package format

import "pubsweep/internal/source"

// Writer accumulates rewritten output and copies untouched source
// fragments through verbatim.
type Writer struct {
	sf  *source.File
	buf []byte
}

// NewWriter creates a writer sized for the source it rewrites.
func NewWriter(sf *source.File) *Writer {
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)+64),
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends replacement text.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// CopyRange appends the source bytes in [start, end) unchanged.
func (w *Writer) CopyRange(start, end uint32) {
	if start >= end || int(end) > len(w.sf.Content) {
		return
	}
	w.buf = append(w.buf, w.sf.Content[start:end]...)
}

// CopySpan appends the source bytes under a span unchanged.
func (w *Writer) CopySpan(sp source.Span) {
	w.CopyRange(sp.Start, sp.End)
}
