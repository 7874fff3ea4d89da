package views

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/figscope/pkg/core/node"
	"github.com/matzehuels/figscope/pkg/core/transform"
)

func str(s string) *string { return &s }

func snapshot(t *testing.T) *Snapshot {
	t.Helper()
	doc, err := node.Parse([]byte(`{
		"id": "0:0", "name": "Document", "type": "DOCUMENT",
		"children": [{
			"id": "0:1", "name": "Home", "type": "CANVAS",
			"backgroundColor": {"r": 1},
			"flowStartingPoints": [{"nodeId": "1:1", "name": "Onboarding"}],
			"children": [{
				"id": "1:1", "name": "Welcome", "type": "FRAME",
				"fills": [],
				"children": [{
					"id": "1:2", "name": "Next", "type": "INSTANCE",
					"componentId": "5:1",
					"interactions": [{
						"trigger": {"type": "ON_CLICK"},
						"actions": [{"type": "NODE", "destinationId": "1:3", "navigationType": "NAVIGATE"}]
					}]
				}]
			}]
		}]
	}`))
	require.NoError(t, err)

	return &Snapshot{
		Name:     str("Demo"),
		Version:  str("42"),
		Document: doc,
		Components: map[string]node.Node{
			"5:1": {"name": "Button", "key": "k1", "componentSetId": "5:0"},
		},
		Variables: map[string]node.Node{
			"V:1": {"name": "loggedIn", "resolvedType": "BOOLEAN"},
		},
		Comments: []node.Node{{"id": "c1", "message": "hello"}},
	}
}

func TestBuildStructure(t *testing.T) {
	s := snapshot(t)
	v := BuildStructure(s, 1)

	assert.Equal(t, "Demo", *v.FileName)
	assert.Nil(t, v.LastModified)

	pages, ok := v.Document.Children()
	require.True(t, ok)
	require.Len(t, pages, 1)
	assert.NotContains(t, pages[0], "backgroundColor")
	assert.Equal(t, 1, pages[0][transform.ChildCountField])

	full := BuildStructure(s, transform.Unlimited)
	assert.Equal(t, 4, full.Document.Count())
}

func TestBuildInteractionsIgnoresDepth(t *testing.T) {
	s := snapshot(t)
	v := BuildInteractions(s)

	require.Len(t, v.Interactions, 1)
	assert.Equal(t, "Home/Welcome/Next", v.Interactions[0].Path)
	require.Len(t, v.FlowStartingPoints, 1)
	assert.Equal(t, "Home", v.FlowStartingPoints[0].Page)
}

func TestBuildInteractionsEmpty(t *testing.T) {
	v := BuildInteractions(&Snapshot{})
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fileName":null,"interactions":[],"flowStartingPoints":[]}`, string(data))
}

func TestBuildMetadataScoping(t *testing.T) {
	s := snapshot(t)

	unscoped := BuildMetadata(s)
	data, err := json.Marshal(unscoped)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "nodeProperties")
	assert.Equal(t, "5:0", *unscoped.Components["5:1"].ComponentSetID)
	assert.Empty(t, unscoped.ComponentSets)

	s.ScopedNodes = map[string]node.Node{"1:1": {"name": "Welcome"}}
	noProps := BuildMetadata(s)
	assert.Nil(t, noProps.NodeProperties, "scoped nodes without properties are omitted")

	s.ScopedNodes["1:2"] = node.Node{
		"name":                "Next",
		"componentProperties": map[string]any{"Size": map[string]any{"type": "VARIANT", "defaultValue": "L"}},
	}
	scoped := BuildMetadata(s)
	require.Len(t, scoped.NodeProperties, 1)
	assert.Equal(t, "VARIANT", *scoped.NodeProperties["1:2"].Properties["Size"].Type)
}

func TestAssemble(t *testing.T) {
	s := snapshot(t)
	full := Assemble(
		BuildStructure(s, 3),
		BuildInteractions(s),
		BuildMetadata(s),
		BuildVariables(s),
		BuildComments(s),
	)

	data, err := json.Marshal(full)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{
		"fileName", "lastModified", "version", "structure", "interactions",
		"flowStartingPoints", "components", "componentSets", "variables",
		"variableCollections", "comments",
	} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "nodeProperties")
	assert.Equal(t, map[string]any{}, out["variableCollections"])
	assert.Len(t, out["comments"], 1)
}

func TestBuildersDoNotMutateSnapshot(t *testing.T) {
	s := snapshot(t)
	before, err := json.Marshal(s.Document)
	require.NoError(t, err)

	BuildStructure(s, 0)
	BuildInteractions(s)

	after, err := json.Marshal(s.Document)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}
