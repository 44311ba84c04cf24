package yamldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderBlockAndFlow(t *testing.T) {
	inner := NewFlowMap().Set("passthrough", "allow")
	entry := NewMap().
		Set("type", "poly2d").
		Set("min-y", -64).
		Set("max-y", 320).
		Set("priority", 0).
		SetNode("flags", inner)
	root := NewMap().SetNode("regions", NewMap().SetNode("test_vale", entry))

	out, err := Render(root)
	require.NoError(t, err)

	assert.Contains(t, out, "regions:")
	assert.Contains(t, out, "test_vale:")
	assert.Contains(t, out, "min-y: -64")
	assert.Contains(t, out, "max-y: 320")
	assert.Contains(t, out, "priority: 0")
	assert.Contains(t, out, "flags: {passthrough: allow}")
}

func TestRenderFlowSeq(t *testing.T) {
	root := NewMap().SetNode("deny-spawn", NewFlowSeq().Add("zombie").Add("creeper"))
	out, err := Render(root)
	require.NoError(t, err)
	assert.Contains(t, out, "deny-spawn: [zombie, creeper]")
}

func TestRenderBlockSeqOfMaps(t *testing.T) {
	rule := NewMap().Set("custom-rule", "spawn").Set("is-enabled", true)
	out, err := Render(NewSeq().AddNode(rule))
	require.NoError(t, err)
	assert.Contains(t, out, "- custom-rule: spawn")
	assert.Contains(t, out, "is-enabled: true")
}

func TestRenderedDocumentReparses(t *testing.T) {
	points := NewSeq().
		AddNode(NewFlowMap().Set("x", 0).Set("z", 0)).
		AddNode(NewFlowMap().Set("x", 10).Set("z", 0))
	root := NewMap().SetNode("points", points).Set("greeting", "Welcome to Test Vale\n&6A bronze land")

	out, err := Render(root)
	require.NoError(t, err)

	var parsed struct {
		Points []struct {
			X int `yaml:"x"`
			Z int `yaml:"z"`
		} `yaml:"points"`
		Greeting string `yaml:"greeting"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Points, 2)
	assert.Equal(t, 10, parsed.Points[1].X)
	assert.Equal(t, "Welcome to Test Vale\n&6A bronze land", parsed.Greeting)
}

func TestRenderDeterministic(t *testing.T) {
	build := func() *Map {
		return NewMap().Set("b", 1).Set("a", 2).SetNode("c", NewFlowMap().Set("k", "v"))
	}
	first, err := Render(build())
	require.NoError(t, err)
	second, err := Render(build())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Insertion order is preserved, not sorted.
	assert.Less(t, strings.Index(first, "b:"), strings.Index(first, "a:"))
}

func TestSetRejectsUnencodableValue(t *testing.T) {
	m := NewMap().Set("bad", func() {})
	_, err := Render(m)
	assert.Error(t, err)
}
