package figma

import "github.com/matzehuels/figscope/pkg/core/node"

// File is the decoded response of GET /files/:key.
//
// Only the fields figscope consumes are lifted out; everything else stays
// reachable through the document tree. Metadata dictionaries whose values
// are not objects are dropped entry by entry rather than failing the decode.
type File struct {
	Name         *string
	LastModified *string
	Version      *string

	Document      node.Node
	Components    map[string]node.Node
	ComponentSets map[string]node.Node
}

// Variables is the decoded response of GET /files/:key/variables/local.
type Variables struct {
	Variables   map[string]node.Node
	Collections map[string]node.Node
}

// FileFrom lifts a [File] out of a decoded response body.
func FileFrom(body node.Node) *File {
	doc, _ := body.Map("document")
	return &File{
		Name:          optString(body, "name"),
		LastModified:  optString(body, "lastModified"),
		Version:       optString(body, "version"),
		Document:      doc,
		Components:    body.Records("components"),
		ComponentSets: body.Records("componentSets"),
	}
}

// NodesFrom extracts id → document from a GET /files/:key/nodes response.
// Ids the API reports as null (unknown or inaccessible) are skipped.
func NodesFrom(body node.Node) map[string]node.Node {
	out := make(map[string]node.Node)
	for id, entry := range body.Records("nodes") {
		if doc, ok := entry.Map("document"); ok {
			out[id] = doc
		}
	}
	return out
}

// VariablesFrom extracts the local variables payload.
func VariablesFrom(body node.Node) *Variables {
	meta, _ := body.Map("meta")
	return &Variables{
		Variables:   meta.Records("variables"),
		Collections: meta.Records("variableCollections"),
	}
}

// CommentsFrom extracts the ordered comment list.
func CommentsFrom(body node.Node) []node.Node {
	comments, _ := body.Nodes("comments")
	return comments
}

func optString(n node.Node, field string) *string {
	if s, ok := n.String(field); ok {
		return &s
	}
	return nil
}
