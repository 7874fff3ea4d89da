package meta

import "github.com/matzehuels/figscope/pkg/core/node"

// Component is the flattened metadata of a published or local component.
//
// ComponentSetID is a weak reference: the set it names may be missing from
// the same file, and the value is passed through unchanged either way.
type Component struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Key             *string `json:"key"`
	ComponentSetID  *string `json:"componentSetId"`
	ContainingFrame *string `json:"containingFrame"`
}

// ComponentSet groups the variants of one component family.
type ComponentSet struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Key         *string `json:"key"`
}

// NodeProperties describes the component properties declared on one node.
type NodeProperties struct {
	Name       *string                       `json:"name"`
	Properties map[string]PropertyDefinition `json:"properties"`
}

// PropertyDefinition is one entry of a node's componentProperties map.
type PropertyDefinition struct {
	Type           *string `json:"type"`
	DefaultValue   any     `json:"defaultValue"`
	VariantOptions any     `json:"variantOptions"`
}

// Components projects the file's component dictionary.
func Components(records map[string]node.Node) map[string]Component {
	out := make(map[string]Component, len(records))
	for id, c := range records {
		out[id] = Component{
			Name:            optString(c, "name"),
			Description:     optString(c, "description"),
			Key:             optString(c, "key"),
			ComponentSetID:  optString(c, "componentSetId"),
			ContainingFrame: containingFrame(c),
		}
	}
	return out
}

// ComponentSets projects the file's component set dictionary.
func ComponentSets(records map[string]node.Node) map[string]ComponentSet {
	out := make(map[string]ComponentSet, len(records))
	for id, cs := range records {
		out[id] = ComponentSet{
			Name:        optString(cs, "name"),
			Description: optString(cs, "description"),
			Key:         optString(cs, "key"),
		}
	}
	return out
}

// ExtractNodeProperties collects componentProperties from node documents
// returned by a scoped nodes lookup, keyed by node id.
//
// Only nodes with a non-empty componentProperties map are included, so the
// result is empty (not nil-valued) when none of the scoped nodes is a
// component or instance.
func ExtractNodeProperties(documents map[string]node.Node) map[string]NodeProperties {
	out := make(map[string]NodeProperties)
	for id, doc := range documents {
		props, ok := doc.Map("componentProperties")
		if !ok || len(props) == 0 {
			continue
		}
		defs := make(map[string]PropertyDefinition, len(props))
		for name, raw := range props {
			def, _ := node.From(raw)
			defaultValue, _ := def.Get("defaultValue")
			variantOptions, _ := def.Get("variantOptions")
			defs[name] = PropertyDefinition{
				Type:           optString(def, "type"),
				DefaultValue:   defaultValue,
				VariantOptions: variantOptions,
			}
		}
		out[id] = NodeProperties{Name: optString(doc, "name"), Properties: defs}
	}
	return out
}

// containingFrame reads the frame name from either spelling the API uses.
func containingFrame(c node.Node) *string {
	for _, field := range []string{"containing_frame", "containingFrame"} {
		if f, ok := c.Map(field); ok {
			return optString(f, "name")
		}
	}
	return nil
}
