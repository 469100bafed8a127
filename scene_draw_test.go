package lunar

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLog is a DrawBackend that records the raw call sequence.
type callLog struct {
	calls []string
}

func (c *callLog) BindGeometry(handle GeometryHandle)  { c.calls = append(c.calls, "bind") }
func (c *callLog) SetTransforms(mvp, world mgl32.Mat4) { c.calls = append(c.calls, "transforms") }
func (c *callLog) DrawIndexed(indexCount int32)        { c.calls = append(c.calls, "draw") }

func handles(cmds []DrawCommand) []GeometryHandle {
	var hs []GeometryHandle
	for _, c := range cmds {
		hs = append(hs, c.Handle)
	}
	return hs
}

func TestDrawScene_PreOrder(t *testing.T) {
	g := NewSceneGraph()
	root := g.NewDrawableNode(10, 3)
	a := g.NewDrawableNode(1, 3)
	a1 := g.NewDrawableNode(2, 3)
	b := g.NewDrawableNode(3, 3)
	g.MustAddChild(root, a)
	g.MustAddChild(a, a1)
	g.MustAddChild(root, b)

	rec := NewCommandRecorder()
	draws := DrawScene(g, root, mgl32.Ident4(), mgl32.Ident4(), rec)

	assert.Equal(t, 4, draws)
	assert.Equal(t, []GeometryHandle{10, 1, 2, 3}, handles(rec.Commands()))
}

func TestDrawScene_SkipsNonDrawables(t *testing.T) {
	g := NewSceneGraph()
	root := g.NewNode()
	empty := g.NewDrawableNode(5, 0)
	leaf := g.NewDrawableNode(6, 42)
	g.MustAddChild(root, empty)
	g.MustAddChild(empty, leaf)

	rec := NewCommandRecorder()
	draws := DrawScene(g, root, mgl32.Ident4(), mgl32.Ident4(), rec)

	require.Equal(t, 1, draws)
	cmds := rec.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, GeometryHandle(6), cmds[0].Handle)
	assert.Equal(t, int32(42), cmds[0].IndexCount)
}

func TestDrawScene_CallSequence(t *testing.T) {
	g := NewSceneGraph()
	root := g.NewDrawableNode(1, 6)
	g.MustAddChild(root, g.NewNode())
	g.MustAddChild(root, g.NewDrawableNode(2, 6))

	log := &callLog{}
	DrawScene(g, root, mgl32.Ident4(), mgl32.Ident4(), log)

	assert.Equal(t, []string{"bind", "transforms", "draw", "bind", "transforms", "draw"}, log.calls)
}

func TestDrawScene_Transforms(t *testing.T) {
	g := NewSceneGraph()
	parent := g.NewDrawableNode(1, 3)
	child := g.NewDrawableNode(2, 3)
	g.MustAddChild(parent, child)

	pn := g.Node(parent)
	pn.Position = mgl32.Vec3{4, 0, 0}
	pn.Rotation = mgl32.Vec3{0, mgl32.DegToRad(90), 0}
	cn := g.Node(child)
	cn.Position = mgl32.Vec3{0, 0, 2}
	cn.ReferencePoint = mgl32.Vec3{1, 0, 0}
	cn.Rotation = mgl32.Vec3{0.2, 0, 0}

	viewProjection := mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 1, 1000).Mul4(mgl32.Translate3D(0, 0, -75))
	soFar := mgl32.Translate3D(0, 10, 0)

	rec := NewCommandRecorder()
	DrawScene(g, parent, viewProjection, soFar, rec)
	cmds := rec.Commands()
	require.Len(t, cmds, 2)

	parentWorld := soFar.Mul4(LocalMatrix(pn))
	childWorld := parentWorld.Mul4(LocalMatrix(cn))

	assert.Equal(t, parentWorld, cmds[0].World)
	assert.Equal(t, viewProjection.Mul4(parentWorld), cmds[0].MVP)
	assert.Equal(t, childWorld, cmds[1].World)
	assert.Equal(t, viewProjection.Mul4(childWorld), cmds[1].MVP)
}

func TestDrawScene_Idempotent(t *testing.T) {
	g := NewSceneGraph()
	root := g.NewNode()
	for i := 0; i < 3; i++ {
		id := g.NewDrawableNode(GeometryHandle(i+1), int32(3*(i+1)))
		g.Node(id).Rotation = mgl32.Vec3{float32(i) * 0.4, 0.1, 0}
		g.MustAddChild(root, id)
	}
	vp := mgl32.Perspective(1, 1, 1, 100)

	rec := NewCommandRecorder()
	DrawScene(g, root, vp, mgl32.Ident4(), rec)
	first := append([]DrawCommand(nil), rec.Commands()...)

	rec.Reset()
	assert.Empty(t, rec.Commands())
	DrawScene(g, root, vp, mgl32.Ident4(), rec)

	assert.Equal(t, first, rec.Commands())
}

func TestDrawScene_DoesNotMutateNodes(t *testing.T) {
	g := NewSceneGraph()
	root := g.NewDrawableNode(1, 3)
	g.Node(root).Position = mgl32.Vec3{1, 2, 3}
	before := *g.Node(root)

	DrawScene(g, root, mgl32.Ident4(), mgl32.Ident4(), NewCommandRecorder())
	assert.Equal(t, before, *g.Node(root))
}

func TestDrawScene_UnknownNode(t *testing.T) {
	g := NewSceneGraph()
	rec := NewCommandRecorder()
	assert.Equal(t, 0, DrawScene(g, NodeId(3), mgl32.Ident4(), mgl32.Ident4(), rec))
	assert.Empty(t, rec.Commands())
}
