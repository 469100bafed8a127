package lunar

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LocalMatrix composes T(position)·T(pivot)·S(scale)·Rx·Ry·Rz·T(-pivot).
// The rotation order is fixed; models are authored against it.
func LocalMatrix(n *SceneNode) mgl32.Mat4 {
	p := n.Position
	r := n.ReferencePoint
	s := n.Scale

	m := mgl32.Translate3D(p.X(), p.Y(), p.Z())
	m = m.Mul4(mgl32.Translate3D(r.X(), r.Y(), r.Z()))
	m = m.Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
	m = m.Mul4(mgl32.HomogRotate3DX(n.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(n.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	m = m.Mul4(mgl32.Translate3D(-r.X(), -r.Y(), -r.Z()))
	return m
}

// ComposeWorld places n under a parent whose world matrix is parentWorld.
func ComposeWorld(parentWorld mgl32.Mat4, n *SceneNode) mgl32.Mat4 {
	return parentWorld.Mul4(LocalMatrix(n))
}

// WorldMatrix recomputes the world matrix of id from the root down.
// Unknown ids yield the identity.
func (g *SceneGraph) WorldMatrix(id NodeId) mgl32.Mat4 {
	if !g.valid(id) {
		return mgl32.Ident4()
	}

	var chain []NodeId
	for cur := id; cur != NoNode; cur = g.nodes[cur].parent {
		chain = append(chain, cur)
	}

	world := mgl32.Ident4()
	for i := len(chain) - 1; i >= 0; i-- {
		world = ComposeWorld(world, &g.nodes[chain[i]])
	}
	return world
}

// TransformPoint maps a point through m as a position (w = 1).
func TransformPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}
