package lunar

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// NodeId addresses a node inside a SceneGraph. Ids are stable for the
// lifetime of the graph.
type NodeId int

// NoNode is the id of a missing node, e.g. the parent of a root.
const NoNode NodeId = -1

// GeometryHandle is an opaque, backend-bindable reference to uploaded mesh data.
type GeometryHandle uint32

// Drawable references uploaded geometry. IndexCount 0 means nothing is drawn.
type Drawable struct {
	Handle     GeometryHandle
	IndexCount int32
}

var (
	ErrInvalidNode     = errors.New("invalid node id")
	ErrAlreadyParented = errors.New("node already has a parent")
	ErrCycle           = errors.New("node would become its own ancestor")
)

type SceneNode struct {
	Name string

	Position mgl32.Vec3
	// Rotation holds Euler angles in radians, applied X then Y then Z.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	// ReferencePoint is the pivot for rotation and scale, in the node's own space.
	ReferencePoint mgl32.Vec3

	Drawable *Drawable

	parent   NodeId
	children []NodeId
}

// Drawn reports whether traversal issues a draw command for the node.
func (n *SceneNode) Drawn() bool {
	return n.Drawable != nil && n.Drawable.IndexCount > 0
}

// SceneGraph owns all nodes of a scene. Parents link to children by id so
// aggregates such as a helicopter can keep ids of their parts without
// sharing ownership.
type SceneGraph struct {
	nodes []SceneNode
}

func NewSceneGraph() *SceneGraph {
	return &SceneGraph{}
}

// NewNode adds a node with an identity transform and no drawable.
func (g *SceneGraph) NewNode() NodeId {
	g.nodes = append(g.nodes, SceneNode{
		Scale:  mgl32.Vec3{1, 1, 1},
		parent: NoNode,
	})
	return NodeId(len(g.nodes) - 1)
}

func (g *SceneGraph) NewNamedNode(name string) NodeId {
	id := g.NewNode()
	g.nodes[id].Name = name
	return id
}

// NewDrawableNode adds an identity node that draws indexCount indices of handle.
func (g *SceneGraph) NewDrawableNode(handle GeometryHandle, indexCount int32) NodeId {
	id := g.NewNode()
	g.nodes[id].Drawable = &Drawable{Handle: handle, IndexCount: indexCount}
	return id
}

func (g *SceneGraph) valid(id NodeId) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node for id, or nil if id is not part of the graph.
// The pointer is invalidated by the next NewNode call.
func (g *SceneGraph) Node(id NodeId) *SceneNode {
	if !g.valid(id) {
		return nil
	}
	return &g.nodes[id]
}

func (g *SceneGraph) Len() int {
	return len(g.nodes)
}

// AddChild appends child to the children of parent. The child must not have
// a parent yet and must not be parent itself or one of its ancestors.
func (g *SceneGraph) AddChild(parent, child NodeId) error {
	if !g.valid(parent) {
		return errors.Wrapf(ErrInvalidNode, "parent %d", parent)
	}
	if !g.valid(child) {
		return errors.Wrapf(ErrInvalidNode, "child %d", child)
	}
	if p := g.nodes[child].parent; p != NoNode {
		return errors.Wrapf(ErrAlreadyParented, "child %d is under %d", child, p)
	}
	for anc := parent; anc != NoNode; anc = g.nodes[anc].parent {
		if anc == child {
			return errors.Wrapf(ErrCycle, "add %d under %d", child, parent)
		}
	}

	g.nodes[parent].children = append(g.nodes[parent].children, child)
	g.nodes[child].parent = parent
	return nil
}

// MustAddChild is AddChild for setup code whose tree shape is fixed.
func (g *SceneGraph) MustAddChild(parent, child NodeId) {
	if err := g.AddChild(parent, child); err != nil {
		panic(err)
	}
}

// Children returns a copy of the child ids of id in insertion order.
func (g *SceneGraph) Children(id NodeId) []NodeId {
	if !g.valid(id) {
		return nil
	}
	return append([]NodeId(nil), g.nodes[id].children...)
}

func (g *SceneGraph) Parent(id NodeId) NodeId {
	if !g.valid(id) {
		return NoNode
	}
	return g.nodes[id].parent
}

// Roots returns every parentless node in creation order.
func (g *SceneGraph) Roots() []NodeId {
	var roots []NodeId
	for i := range g.nodes {
		if g.nodes[i].parent == NoNode {
			roots = append(roots, NodeId(i))
		}
	}
	return roots
}

// FindByName returns the first node in creation order called name.
func (g *SceneGraph) FindByName(name string) (NodeId, bool) {
	for i := range g.nodes {
		if g.nodes[i].Name == name {
			return NodeId(i), true
		}
	}
	return NoNode, false
}

// Walk visits root and its descendants depth-first, pre-order. Returning
// false from fn skips the children of the visited node.
func (g *SceneGraph) Walk(root NodeId, fn func(id NodeId, depth int) bool) {
	if !g.valid(root) {
		return
	}
	g.walk(root, 0, fn)
}

func (g *SceneGraph) walk(id NodeId, depth int, fn func(id NodeId, depth int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, child := range g.nodes[id].children {
		g.walk(child, depth+1, fn)
	}
}

// Dump renders the subtree under root one node per line, indented by depth.
func (g *SceneGraph) Dump(root NodeId) string {
	var sb strings.Builder
	g.Walk(root, func(id NodeId, depth int) bool {
		n := &g.nodes[id]
		name := n.Name
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(&sb, "%s#%d %s pos=%v rot=%v", strings.Repeat("  ", depth), id, name, n.Position, n.Rotation)
		if n.Drawable != nil {
			fmt.Fprintf(&sb, " geometry=%d indices=%d", n.Drawable.Handle, n.Drawable.IndexCount)
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
