package lunar

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DrawBackend is the graphics API boundary. Calls arrive in the order
// BindGeometry, SetTransforms, DrawIndexed for every drawn node.
type DrawBackend interface {
	BindGeometry(handle GeometryHandle)
	// SetTransforms supplies the model-view-projection and world matrices
	// for the next DrawIndexed.
	SetTransforms(mvp, world mgl32.Mat4)
	DrawIndexed(indexCount int32)
}

// DrawScene draws node and its subtree depth-first, pre-order. soFar is the
// world matrix of node's parent, identity for the root. It returns the
// number of draw commands issued.
func DrawScene(g *SceneGraph, node NodeId, viewProjection, soFar mgl32.Mat4, backend DrawBackend) int {
	n := g.Node(node)
	if n == nil {
		return 0
	}

	world := ComposeWorld(soFar, n)

	draws := 0
	if n.Drawn() {
		backend.BindGeometry(n.Drawable.Handle)
		backend.SetTransforms(viewProjection.Mul4(world), world)
		backend.DrawIndexed(n.Drawable.IndexCount)
		draws++
	}

	for _, child := range n.children {
		draws += DrawScene(g, child, viewProjection, world, backend)
	}
	return draws
}

// DrawCommand is one recorded draw call.
type DrawCommand struct {
	Handle     GeometryHandle
	IndexCount int32
	MVP        mgl32.Mat4
	World      mgl32.Mat4
}

// CommandRecorder is a DrawBackend that keeps every draw in memory. It backs
// headless runs.
type CommandRecorder struct {
	bound    GeometryHandle
	mvp      mgl32.Mat4
	world    mgl32.Mat4
	commands []DrawCommand
}

func NewCommandRecorder() *CommandRecorder {
	return &CommandRecorder{}
}

func (r *CommandRecorder) BindGeometry(handle GeometryHandle) {
	r.bound = handle
}

func (r *CommandRecorder) SetTransforms(mvp, world mgl32.Mat4) {
	r.mvp = mvp
	r.world = world
}

func (r *CommandRecorder) DrawIndexed(indexCount int32) {
	r.commands = append(r.commands, DrawCommand{
		Handle:     r.bound,
		IndexCount: indexCount,
		MVP:        r.mvp,
		World:      r.world,
	})
}

// Commands returns the draws recorded since the last Reset.
func (r *CommandRecorder) Commands() []DrawCommand {
	return r.commands
}

func (r *CommandRecorder) Reset() {
	r.commands = nil
}
