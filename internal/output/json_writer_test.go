package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/pipeline"
	"github.com/graphlang/codeindex/pkg/graph"
)

func sampleOutput() *RunOutput {
	return &RunOutput{
		Nodes: []graph.Node{graph.NewNode(graph.LabelClass, "Widget", "pkg.Widget", "pkg/widget.kt", 1, 0, 10, 1, "public")},
		Edges: []graph.Edge{graph.NewEdge(graph.EdgeContains, "pkg", "pkg.Widget", false)},
		Stats: &pipeline.Stats{FilesScanned: 1, FilesParsed: 1, TotalCalls: 2, ResolvedCalls: 1, UnresolvedCalls: 1},
	}
}

func TestJSONWriter_WriteComplete(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, true)

	require.NoError(t, w.WriteOutput(sampleOutput()))

	var decoded RunOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Nodes, 1)
	assert.Len(t, decoded.Edges, 1)
	assert.Equal(t, 1, decoded.Stats.FilesScanned)
}

func TestJSONWriter_WriteStreaming(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamingJSONWriter(&buf, true)

	require.NoError(t, w.WriteOutput(sampleOutput()))

	var decoded RunOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Nodes, 1)
	assert.Len(t, decoded.Edges, 1)
	assert.Equal(t, 2, decoded.Stats.TotalCalls)
}

func TestJSONWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamingJSONWriter(&buf, false)

	out := &RunOutput{Stats: &pipeline.Stats{}}
	require.NoError(t, w.WriteOutput(out))

	var decoded RunOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded.Nodes)
	assert.Empty(t, decoded.Edges)
}
