package flow

import "github.com/matzehuels/figscope/pkg/core/node"

// Action types that open an overlay and therefore carry a position.
const (
	ActionOpenOverlay = "OPEN_OVERLAY"
	ActionSwapOverlay = "SWAP_OVERLAY"
)

// Edge is one trigger → action pair declared on a node.
//
// Edges reference nodes by id only. Overlay and Transition are nil unless
// the source action is an overlay action or carries a transition, and are
// then omitted from the JSON form entirely.
type Edge struct {
	NodeID     string      `json:"nodeId"`
	NodeName   string      `json:"nodeName"`
	Path       string      `json:"path"`
	Trigger    Trigger     `json:"trigger"`
	Action     Action      `json:"action"`
	Transition *Transition `json:"transition,omitempty"`
}

// Trigger describes the user event that fires an interaction.
type Trigger struct {
	Type *string `json:"type"`
}

// Action describes what happens when the trigger fires. Fields missing in
// the source serialize as null.
type Action struct {
	Type           *string  `json:"type"`
	NavigationType *string  `json:"navigationType"`
	DestinationID  *string  `json:"destinationId"`
	URL            *string  `json:"url"`
	Overlay        *Overlay `json:"overlay,omitempty"`
}

// Overlay is attached to overlay actions only.
type Overlay struct {
	Position any `json:"position"`
}

// Transition is the animation attached to an action.
type Transition struct {
	Type     *string  `json:"type"`
	Duration *float64 `json:"duration"`
}

// IsOverlay reports whether actionType opens or swaps an overlay.
func IsOverlay(actionType string) bool {
	return actionType == ActionOpenOverlay || actionType == ActionSwapOverlay
}

// ExtractInteractions walks the tree rooted at root in depth-first pre-order
// and returns one [Edge] per (interaction, action) pair.
//
// Each edge's Path joins the names from root down to the source node with
// "/". Node order and the action order within a node are preserved. An
// interaction without a trigger still yields edges with a null trigger type;
// malformed interactions and actions contribute nothing.
func ExtractInteractions(root node.Node) []Edge {
	var edges []Edge
	collect(root, "", &edges)
	return edges
}

// ExtractDocumentInteractions runs [ExtractInteractions] from each top-level
// page of document and concatenates the results. The document node itself
// does not appear in any path, so paths start with the page name.
func ExtractDocumentInteractions(document node.Node) []Edge {
	var edges []Edge
	pages, _ := document.Children()
	for _, page := range pages {
		collect(page, "", &edges)
	}
	return edges
}

func collect(n node.Node, parent string, edges *[]Edge) {
	name := n.Name()
	path := name
	if parent != "" {
		path = parent + "/" + name
	}

	interactions, _ := n.Nodes("interactions")
	for _, interaction := range interactions {
		trigger, _ := interaction.Map("trigger")
		actions, _ := interaction.Nodes("actions")
		for _, action := range actions {
			*edges = append(*edges, Edge{
				NodeID:     n.ID(),
				NodeName:   name,
				Path:       path,
				Trigger:    Trigger{Type: optString(trigger, "type")},
				Action:     newAction(action),
				Transition: newTransition(action),
			})
		}
	}

	children, _ := n.Children()
	for _, c := range children {
		collect(c, path, edges)
	}
}

func newAction(a node.Node) Action {
	out := Action{
		Type:           optString(a, "type"),
		NavigationType: optString(a, "navigationType"),
		DestinationID:  optString(a, "destinationId"),
		URL:            optString(a, "url"),
	}
	if t, _ := a.String("type"); IsOverlay(t) {
		pos, _ := a.Get("overlayRelativePosition")
		out.Overlay = &Overlay{Position: pos}
	}
	return out
}

func newTransition(a node.Node) *Transition {
	t, ok := a.Map("transition")
	if !ok || len(t) == 0 {
		return nil
	}
	out := &Transition{Type: optString(t, "type")}
	if d, ok := t.Number("duration"); ok {
		out.Duration = &d
	}
	return out
}

// optString returns a pointer to the string field, or nil when it is
// absent, null, or not a string.
func optString(n node.Node, field string) *string {
	if s, ok := n.String(field); ok {
		return &s
	}
	return nil
}
