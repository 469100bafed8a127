package lunar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HelicopterMeshes are the four drawable parts of the helicopter model.
type HelicopterMeshes struct {
	Body      Drawable
	Door      Drawable
	MainRotor Drawable
	TailRotor Drawable
}

// TailRotorPivot is where the tail rotor hub sits in model space.
var TailRotorPivot = mgl32.Vec3{0.35, 2.30, 10.40}

// Helicopter keeps the ids of its parts. The nodes themselves live in the
// SceneGraph; Root groups the parts and carries the flight transform.
type Helicopter struct {
	Root      NodeId
	Body      NodeId
	Door      NodeId
	MainRotor NodeId
	TailRotor NodeId

	TimeOffset float32
}

func NewHelicopter(g *SceneGraph, meshes HelicopterMeshes, position, rotation mgl32.Vec3) (*Helicopter, error) {
	h := &Helicopter{
		Root:      g.NewNamedNode("helicopter"),
		Body:      newPart(g, "body", meshes.Body),
		Door:      newPart(g, "door", meshes.Door),
		MainRotor: newPart(g, "main_rotor", meshes.MainRotor),
		TailRotor: newPart(g, "tail_rotor", meshes.TailRotor),
	}
	g.Node(h.TailRotor).ReferencePoint = TailRotorPivot

	root := g.Node(h.Root)
	root.Position = position
	root.Rotation = rotation

	for _, part := range []NodeId{h.Body, h.Door, h.MainRotor, h.TailRotor} {
		if err := g.AddChild(h.Root, part); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func newPart(g *SceneGraph, name string, d Drawable) NodeId {
	id := g.NewDrawableNode(d.Handle, d.IndexCount)
	g.Node(id).Name = name
	return id
}

func (h *Helicopter) SpinRotors(g *SceneGraph, mainRotor, tailRotor mgl32.Vec3) {
	g.Node(h.MainRotor).Rotation = mainRotor
	g.Node(h.TailRotor).Rotation = tailRotor
}

// Animate places the helicopter on the heading path at elapsed+offset
// seconds. The rotors spin with elapsed only, so offset helicopters share
// rotor phase.
func (h *Helicopter) Animate(g *SceneGraph, elapsed, offset float32) {
	heading := SimpleHeadingAnimation(elapsed + offset)

	root := g.Node(h.Root)
	root.Position[0] = heading.X
	root.Position[2] = heading.Z
	root.Rotation = mgl32.Vec3{heading.Pitch, heading.Yaw, heading.Roll}

	h.SpinRotors(g,
		mgl32.Vec3{0, 8 * elapsed, 0},
		mgl32.Vec3{8 * elapsed, 0, 0},
	)
}

// Heading is a position on the ground plane plus an attitude in radians.
type Heading struct {
	X, Z             float32
	Roll, Pitch, Yaw float32
}

const (
	headingStep         = 0.05
	headingPathSize     = 15
	headingCircuitSpeed = 0.8
)

// SimpleHeadingAnimation follows a figure-of-eight loop. The attitude is
// taken from the direction of travel over the next step: pitch dips with
// speed, yaw faces forward, roll sways with the circuit.
func SimpleHeadingAnimation(t float32) Heading {
	x := headingPathSize * math32.Sin(2*t*headingCircuitSpeed)
	xNext := headingPathSize * math32.Sin(2*(t+headingStep)*headingCircuitSpeed)
	z := 3 * headingPathSize * math32.Cos(t*headingCircuitSpeed)
	zNext := 3 * headingPathSize * math32.Cos((t+headingStep)*headingCircuitSpeed)

	delta := mgl32.Vec2{xNext - x, zNext - z}

	return Heading{
		X:     x,
		Z:     z,
		Roll:  math32.Cos(t*headingCircuitSpeed) * 0.5,
		Pitch: -0.175 * delta.Len(),
		Yaw:   math32.Pi + math32.Atan2(delta.X(), delta.Y()),
	}
}
