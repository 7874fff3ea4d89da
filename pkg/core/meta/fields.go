package meta

import "github.com/matzehuels/figscope/pkg/core/node"

func optString(n node.Node, field string) *string {
	if s, ok := n.String(field); ok {
		return &s
	}
	return nil
}

func optBool(n node.Node, field string) *bool {
	if b, ok := n.Bool(field); ok {
		return &b
	}
	return nil
}
