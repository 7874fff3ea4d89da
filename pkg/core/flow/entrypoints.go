package flow

import "github.com/matzehuels/figscope/pkg/core/node"

const flowStartingPointsField = "flowStartingPoints"

// EntryPoint is a named starting node of a prototype flow.
type EntryPoint struct {
	Page   string `json:"page"`
	Name   string `json:"name"`
	NodeID string `json:"nodeId"`
}

// ExtractEntryPoints collects the flow starting points of every page in
// document.
//
// For each page, the lists found on its direct children come first (in
// child order), followed by the list found on the page itself. Every entry
// is tagged with the page name. Entries present at both levels are reported
// twice.
func ExtractEntryPoints(document node.Node) []EntryPoint {
	var out []EntryPoint
	pages, _ := document.Children()
	for _, page := range pages {
		pageName := page.Name()
		children, _ := page.Children()
		for _, c := range children {
			out = appendEntryPoints(out, pageName, c)
		}
		out = appendEntryPoints(out, pageName, page)
	}
	return out
}

func appendEntryPoints(out []EntryPoint, page string, n node.Node) []EntryPoint {
	points, _ := n.Nodes(flowStartingPointsField)
	for _, fp := range points {
		out = append(out, EntryPoint{
			Page:   page,
			Name:   fp.StringOr("name", ""),
			NodeID: fp.StringOr("nodeId", ""),
		})
	}
	return out
}
