// Package output writes one indexing run's graph batch and stats as JSON.
// Grounded on the teacher's internal/output/json_writer.go, which wrote a
// schema.ParseOutput (files/relationships/metadata) the same two ways this
// package keeps: a single json.Encoder pass for small runs, or a
// hand-streamed array-by-array pass that never holds the whole payload in
// memory twice, for large ones.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/graphlang/codeindex/internal/pipeline"
	"github.com/graphlang/codeindex/pkg/graph"
)

// RunOutput is the dry-run JSON shape: the full graph batch plus the run's
// stats, the equivalent of the teacher's Files/Relationships/Metadata for
// this domain's Nodes/Edges/Stats.
type RunOutput struct {
	Nodes []graph.Node    `json:"nodes"`
	Edges []graph.Edge    `json:"edges"`
	Stats *pipeline.Stats `json:"stats"`
}

// JSONWriter serializes a RunOutput, either in one pass or streamed
// array-by-array.
type JSONWriter struct {
	writer    io.Writer
	indent    bool
	streaming bool
}

// NewJSONWriter creates a single-pass JSON writer.
func NewJSONWriter(writer io.Writer, indent bool) *JSONWriter {
	return &JSONWriter{writer: writer, indent: indent}
}

// NewStreamingJSONWriter creates a writer that emits the nodes and edges
// arrays incrementally, for runs too large to comfortably re-marshal whole.
func NewStreamingJSONWriter(writer io.Writer, indent bool) *JSONWriter {
	return &JSONWriter{writer: writer, indent: indent, streaming: true}
}

// WriteOutput writes out, using whichever mode the writer was built for.
func (w *JSONWriter) WriteOutput(out *RunOutput) error {
	if w.streaming {
		return w.writeStreaming(out)
	}
	return w.writeComplete(out)
}

func (w *JSONWriter) writeComplete(out *RunOutput) error {
	encoder := json.NewEncoder(w.writer)
	if w.indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode run output: %w", err)
	}
	return nil
}

func (w *JSONWriter) writeStreaming(out *RunOutput) error {
	if _, err := w.writer.Write([]byte("{\n")); err != nil {
		return err
	}
	if err := w.writeNodesStreaming(out.Nodes); err != nil {
		return err
	}
	if err := w.writeEdgesStreaming(out.Edges); err != nil {
		return err
	}
	if err := w.writeStats(out.Stats); err != nil {
		return err
	}
	_, err := w.writer.Write([]byte("\n}\n"))
	return err
}

func (w *JSONWriter) indentPrefix() string {
	if w.indent {
		return "  "
	}
	return ""
}

func (w *JSONWriter) writeNodesStreaming(nodes []graph.Node) error {
	return writeArrayStreaming(w.writer, w.indentPrefix(), "nodes", len(nodes), func(i int) (any, error) {
		return nodes[i], nil
	})
}

func (w *JSONWriter) writeEdgesStreaming(edges []graph.Edge) error {
	return writeArrayStreaming(w.writer, w.indentPrefix(), "edges", len(edges), func(i int) (any, error) {
		return edges[i], nil
	})
}

// writeArrayStreaming writes `"<name>": [ ... ],\n` one marshaled element
// at a time, so the caller never holds more than one element's JSON in
// memory at once.
func writeArrayStreaming(w io.Writer, indent, name string, n int, at func(int) (any, error)) error {
	if _, err := w.Write([]byte(indent + `"` + name + "\": [\n")); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		elem, err := at(i)
		if err != nil {
			return err
		}
		elemJSON, err := json.MarshalIndent(elem, indent+"  ", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s[%d]: %w", name, i, err)
		}
		if _, err := w.Write([]byte(indent + "  ")); err != nil {
			return err
		}
		if _, err := w.Write(elemJSON); err != nil {
			return err
		}
		if i < n-1 {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(indent + "],\n"))
	return err
}

func (w *JSONWriter) writeStats(stats *pipeline.Stats) error {
	indent := w.indentPrefix()
	statsJSON, err := json.MarshalIndent(stats, indent, "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if _, err := w.writer.Write([]byte(indent + `"stats": `)); err != nil {
		return err
	}
	_, err = w.writer.Write(statsJSON)
	return err
}

// WriteToStdout writes a RunOutput to stdout.
func WriteToStdout(out *RunOutput, indent, streaming bool) error {
	var writer *JSONWriter
	if streaming {
		writer = NewStreamingJSONWriter(os.Stdout, indent)
	} else {
		writer = NewJSONWriter(os.Stdout, indent)
	}
	return writer.WriteOutput(out)
}

// WriteToFile writes a RunOutput to filePath.
func WriteToFile(out *RunOutput, filePath string, indent, streaming bool) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	var writer *JSONWriter
	if streaming {
		writer = NewStreamingJSONWriter(f, indent)
	} else {
		writer = NewJSONWriter(f, indent)
	}
	return writer.WriteOutput(out)
}
