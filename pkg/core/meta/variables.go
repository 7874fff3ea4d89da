package meta

import "github.com/matzehuels/figscope/pkg/core/node"

// Variable is a local design variable.
//
// ValuesByMode maps mode id to the value in that mode. Values keep their
// source shape: booleans, strings, numbers, color objects, or alias objects.
type Variable struct {
	Name                 *string `json:"name"`
	ResolvedType         *string `json:"resolvedType"`
	Description          *string `json:"description"`
	VariableCollectionID *string `json:"variableCollectionId"`
	ValuesByMode         any     `json:"valuesByMode"`
	Scopes               any     `json:"scopes"`
	HiddenFromPublishing *bool   `json:"hiddenFromPublishing"`
}

// VariableCollection owns an ordered set of modes, one of which is the
// default.
type VariableCollection struct {
	Name                 *string `json:"name"`
	Modes                any     `json:"modes"`
	DefaultModeID        *string `json:"defaultModeId"`
	HiddenFromPublishing *bool   `json:"hiddenFromPublishing"`
}

// Variables projects the local variable dictionary.
func Variables(records map[string]node.Node) map[string]Variable {
	out := make(map[string]Variable, len(records))
	for id, v := range records {
		values, _ := v.Get("valuesByMode")
		scopes, _ := v.Get("scopes")
		out[id] = Variable{
			Name:                 optString(v, "name"),
			ResolvedType:         optString(v, "resolvedType"),
			Description:          optString(v, "description"),
			VariableCollectionID: optString(v, "variableCollectionId"),
			ValuesByMode:         values,
			Scopes:               scopes,
			HiddenFromPublishing: optBool(v, "hiddenFromPublishing"),
		}
	}
	return out
}

// VariableCollections projects the local variable collection dictionary.
func VariableCollections(records map[string]node.Node) map[string]VariableCollection {
	out := make(map[string]VariableCollection, len(records))
	for id, c := range records {
		modes, _ := c.Get("modes")
		out[id] = VariableCollection{
			Name:                 optString(c, "name"),
			Modes:                modes,
			DefaultModeID:        optString(c, "defaultModeId"),
			HiddenFromPublishing: optBool(c, "hiddenFromPublishing"),
		}
	}
	return out
}
