// Package graph defines the node/edge wire contract the core produces for
// every indexed file (spec §4.9) and the Sink interface a downstream store
// implements to consume it. The wire protocol for the graph store itself
// is outside the core's scope; this package only fixes the shape.
package graph

import "github.com/graphlang/codeindex/internal/identity"

// NodeLabel is one of the fixed node kinds spec §4.9 names.
type NodeLabel string

const (
	LabelPackage    NodeLabel = "Package"
	LabelClass      NodeLabel = "Class"
	LabelInterface  NodeLabel = "Interface"
	LabelObject     NodeLabel = "Object"
	LabelEnum       NodeLabel = "Enum"
	LabelAnnotation NodeLabel = "Annotation"
	LabelFunction   NodeLabel = "Function"
	LabelProperty   NodeLabel = "Property"
	LabelTypeAlias  NodeLabel = "TypeAlias"
)

// EdgeType is one of the fixed relationship kinds spec §4.9 names.
type EdgeType string

const (
	EdgeContains   EdgeType = "CONTAINS"
	EdgeDeclares   EdgeType = "DECLARES"
	EdgeExtends    EdgeType = "EXTENDS"
	EdgeImplements EdgeType = "IMPLEMENTS"
	EdgeCalls      EdgeType = "CALLS"
	EdgeUses       EdgeType = "USES"
	EdgeReturns    EdgeType = "RETURNS"
)

// Node is one graph node. ID is a deterministic hash of FQN (internal/identity)
// so repeated runs over unchanged source agree on node identity.
type Node struct {
	ID          string
	Label       NodeLabel
	Name        string
	FQN         string
	FilePath    string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
	Visibility  string
}

// NewNode builds a Node, deriving its ID from fqn.
func NewNode(label NodeLabel, name, fqn, filePath string, startLine, startColumn, endLine, endColumn int, visibility string) Node {
	return Node{
		ID: identity.NodeID(fqn), Label: label, Name: name, FQN: fqn, FilePath: filePath,
		StartLine: startLine, StartColumn: startColumn, EndLine: endLine, EndColumn: endColumn,
		Visibility: visibility,
	}
}

// Edge is one graph relationship. FromFQN/ToFQN are the endpoints' node
// identities; ToExternal marks an edge whose target was not resolved to a
// node in this batch (spec §4.9: "may be elided or emitted with an
// external flag" — this implementation emits it, flagged, so the caller
// can decide whether to keep it).
type Edge struct {
	ID         string
	Type       EdgeType
	FromFQN    string
	ToFQN      string
	ToExternal bool
}

// NewEdge builds an Edge, deriving its ID from (type, from, to).
func NewEdge(edgeType EdgeType, fromFQN, toFQN string, toExternal bool) Edge {
	return Edge{
		ID: identity.EdgeID(string(edgeType), fromFQN, toFQN),
		Type: edgeType, FromFQN: fromFQN, ToFQN: toFQN, ToExternal: toExternal,
	}
}

// Batch is one unit of writer output: the nodes and edges produced for a
// single file, or a whole run when the caller chooses to buffer.
type Batch struct {
	Nodes []Node
	Edges []Edge
}

// Sink is the downstream consumer contract. Writers call Write once per
// batch (§4.9 leaves batching granularity to the implementation); Flush
// and Close bound a run.
type Sink interface {
	Write(Batch) error
	Flush() error
	Close() error
}
