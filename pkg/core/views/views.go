package views

import (
	"github.com/matzehuels/figscope/pkg/core/flow"
	"github.com/matzehuels/figscope/pkg/core/meta"
	"github.com/matzehuels/figscope/pkg/core/node"
	"github.com/matzehuels/figscope/pkg/core/transform"
)

// Snapshot is the immutable input of every view: one fetched file plus the
// metadata fetched alongside it.
//
// Builders only read from a Snapshot, so any number of them may run
// concurrently over the same value.
type Snapshot struct {
	Name         *string
	LastModified *string
	Version      *string

	// Document is the complete, undepth-limited document tree.
	Document node.Node

	Components          map[string]node.Node
	ComponentSets       map[string]node.Node
	Variables           map[string]node.Node
	VariableCollections map[string]node.Node
	Comments            []node.Node

	// ScopedNodes holds the documents returned by a nodes lookup, keyed by
	// node id. It is nil unless the caller scoped the run to node ids.
	ScopedNodes map[string]node.Node
}

// StructureView is the depth-limited, appearance-free document tree.
type StructureView struct {
	FileName     *string   `json:"fileName"`
	LastModified *string   `json:"lastModified"`
	Version      *string   `json:"version"`
	Document     node.Node `json:"document"`
}

// InteractionView is the prototype graph of the whole document.
type InteractionView struct {
	FileName           *string           `json:"fileName"`
	Interactions       []flow.Edge       `json:"interactions"`
	FlowStartingPoints []flow.EntryPoint `json:"flowStartingPoints"`
}

// MetadataView lists components and component sets. NodeProperties is only
// present when the run was scoped to node ids and at least one of them
// declares component properties.
type MetadataView struct {
	FileName       *string                        `json:"fileName"`
	Components     map[string]meta.Component      `json:"components"`
	ComponentSets  map[string]meta.ComponentSet   `json:"componentSets"`
	NodeProperties map[string]meta.NodeProperties `json:"nodeProperties,omitempty"`
}

// VariablesView lists local variables and their collections.
type VariablesView struct {
	Variables           map[string]meta.Variable           `json:"variables"`
	VariableCollections map[string]meta.VariableCollection `json:"variableCollections"`
}

// CommentView lists the file's comments in API order.
type CommentView struct {
	Comments []meta.Comment `json:"comments"`
}

// Full combines every view into a single record.
type Full struct {
	FileName     *string `json:"fileName"`
	LastModified *string `json:"lastModified"`
	Version      *string `json:"version"`

	Structure          node.Node         `json:"structure"`
	Interactions       []flow.Edge       `json:"interactions"`
	FlowStartingPoints []flow.EntryPoint `json:"flowStartingPoints"`

	Components     map[string]meta.Component      `json:"components"`
	ComponentSets  map[string]meta.ComponentSet   `json:"componentSets"`
	NodeProperties map[string]meta.NodeProperties `json:"nodeProperties,omitempty"`

	Variables           map[string]meta.Variable           `json:"variables"`
	VariableCollections map[string]meta.VariableCollection `json:"variableCollections"`

	Comments []meta.Comment `json:"comments"`
}

// =============================================================================
// Builders
// =============================================================================

// BuildStructure prunes the document to maxDepth levels below the root.
// Use [transform.Unlimited] to keep the whole tree.
func BuildStructure(s *Snapshot, maxDepth int) StructureView {
	return StructureView{
		FileName:     s.Name,
		LastModified: s.LastModified,
		Version:      s.Version,
		Document:     transform.Prune(s.Document, maxDepth),
	}
}

// BuildInteractions extracts edges and flow entry points from every page.
func BuildInteractions(s *Snapshot) InteractionView {
	edges := flow.ExtractDocumentInteractions(s.Document)
	if edges == nil {
		edges = []flow.Edge{}
	}
	points := flow.ExtractEntryPoints(s.Document)
	if points == nil {
		points = []flow.EntryPoint{}
	}
	return InteractionView{
		FileName:           s.Name,
		Interactions:       edges,
		FlowStartingPoints: points,
	}
}

// BuildMetadata flattens component metadata. The nodes lookup is only
// consulted when the snapshot carries one.
func BuildMetadata(s *Snapshot) MetadataView {
	v := MetadataView{
		FileName:      s.Name,
		Components:    meta.Components(s.Components),
		ComponentSets: meta.ComponentSets(s.ComponentSets),
	}
	if s.ScopedNodes != nil {
		if props := meta.ExtractNodeProperties(s.ScopedNodes); len(props) > 0 {
			v.NodeProperties = props
		}
	}
	return v
}

// BuildVariables flattens variables and collections.
func BuildVariables(s *Snapshot) VariablesView {
	return VariablesView{
		Variables:           meta.Variables(s.Variables),
		VariableCollections: meta.VariableCollections(s.VariableCollections),
	}
}

// BuildComments flattens the comment list.
func BuildComments(s *Snapshot) CommentView {
	return CommentView{Comments: meta.Comments(s.Comments)}
}

// Assemble joins independently built views into one record. The file
// header is taken from the structure view.
func Assemble(st StructureView, in InteractionView, md MetadataView, vars VariablesView, cm CommentView) Full {
	return Full{
		FileName:            st.FileName,
		LastModified:        st.LastModified,
		Version:             st.Version,
		Structure:           st.Document,
		Interactions:        in.Interactions,
		FlowStartingPoints:  in.FlowStartingPoints,
		Components:          md.Components,
		ComponentSets:       md.ComponentSets,
		NodeProperties:      md.NodeProperties,
		Variables:           vars.Variables,
		VariableCollections: vars.VariableCollections,
		Comments:            cm.Comments,
	}
}
