package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter writes reports as YAML documents. Each Flush emits one
// document; later flushes are separated by "---".
type YAMLWriter struct {
	w       *bufio.Writer
	enc     *yaml.Encoder
	comment string
	items   []any
	encoded bool
	closed  bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer, opts ...Option) *YAMLWriter {
	o := applyOptions(opts)
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	return &YAMLWriter{
		w:       bw,
		enc:     enc,
		comment: o.comment,
	}
}

// Write buffers a single item.
func (w *YAMLWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered items as one document: a single item directly,
// several as a sequence. The writer's comment, if any, heads the document.
func (w *YAMLWriter) Flush() error {
	if len(w.items) == 0 {
		return w.w.Flush()
	}

	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return err
	}
	node.HeadComment = w.comment

	if err := w.enc.Encode(&node); err != nil {
		return err
	}
	w.encoded = true
	w.items = w.items[:0]
	return w.w.Flush()
}

// Close flushes pending items and terminates the YAML stream.
func (w *YAMLWriter) Close() error {
	if w.closed {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	w.closed = true
	// An encoder that never started a stream cannot end one.
	if !w.encoded {
		return nil
	}
	if err := w.enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
