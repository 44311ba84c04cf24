// Package yamldoc is a small ordered YAML document builder. Export
// dialects are assembled as explicit key-value trees with per-node block
// or flow emission style, then rendered once through the yaml.v3 encoder,
// so indentation and quoting are never hand-assembled.
package yamldoc

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is a buildable document node: a Map or a Seq.
type Node interface {
	raw() *yaml.Node
	err() error
}

// Map is an ordered mapping node. Keys keep insertion order.
type Map struct {
	node     *yaml.Node
	firstErr error
}

// NewMap returns an empty block-style mapping.
func NewMap() *Map {
	return &Map{node: &yaml.Node{Kind: yaml.MappingNode}}
}

// NewFlowMap returns an empty flow-style mapping ({k: v, ...}).
func NewFlowMap() *Map {
	m := NewMap()
	m.node.Style = yaml.FlowStyle
	return m
}

// Flow switches the mapping to flow style and returns it.
func (m *Map) Flow() *Map {
	m.node.Style = yaml.FlowStyle
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.node.Content) / 2
}

// Set appends a scalar entry. Values must be plain scalars (string, bool,
// integer, float); anything the YAML encoder rejects surfaces from
// Render.
func (m *Map) Set(key string, value any) *Map {
	v, err := scalar(value)
	if err != nil {
		m.fail(err)
		return m
	}
	m.node.Content = append(m.node.Content, keyNode(key), v)
	return m
}

// SetNode appends a nested Map or Seq entry.
func (m *Map) SetNode(key string, n Node) *Map {
	if e := n.err(); e != nil {
		m.fail(e)
	}
	m.node.Content = append(m.node.Content, keyNode(key), n.raw())
	return m
}

func (m *Map) raw() *yaml.Node { return m.node }
func (m *Map) err() error      { return m.firstErr }

func (m *Map) fail(err error) {
	if m.firstErr == nil {
		m.firstErr = err
	}
}

// Seq is a sequence node.
type Seq struct {
	node     *yaml.Node
	firstErr error
}

// NewSeq returns an empty block-style sequence.
func NewSeq() *Seq {
	return &Seq{node: &yaml.Node{Kind: yaml.SequenceNode}}
}

// NewFlowSeq returns an empty flow-style sequence ([a, b, ...]).
func NewFlowSeq() *Seq {
	s := NewSeq()
	s.node.Style = yaml.FlowStyle
	return s
}

// Len returns the number of items.
func (s *Seq) Len() int {
	return len(s.node.Content)
}

// Add appends a scalar item.
func (s *Seq) Add(value any) *Seq {
	v, err := scalar(value)
	if err != nil {
		if s.firstErr == nil {
			s.firstErr = err
		}
		return s
	}
	s.node.Content = append(s.node.Content, v)
	return s
}

// AddNode appends a nested Map or Seq item.
func (s *Seq) AddNode(n Node) *Seq {
	if e := n.err(); e != nil && s.firstErr == nil {
		s.firstErr = e
	}
	s.node.Content = append(s.node.Content, n.raw())
	return s
}

func (s *Seq) raw() *yaml.Node { return s.node }
func (s *Seq) err() error      { return s.firstErr }

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func scalar(value any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(value); err != nil {
		return nil, fmt.Errorf("encoding yaml scalar %v: %w", value, err)
	}
	return n, nil
}

// Render emits the document with 2-space indentation. Identical trees
// always render to identical text.
func Render(root Node) (string, error) {
	if err := root.err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root.raw()); err != nil {
		return "", fmt.Errorf("rendering yaml document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("closing yaml encoder: %w", err)
	}
	return buf.String(), nil
}
