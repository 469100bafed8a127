package lunar

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Mesh names looked up by LunarSceneDef.
const (
	MeshLunarSurface        = "lunar_surface"
	MeshHelicopterBody      = "helicopter/body"
	MeshHelicopterDoor      = "helicopter/door"
	MeshHelicopterMainRotor = "helicopter/main_rotor"
	MeshHelicopterTailRotor = "helicopter/tail_rotor"
)

// SceneDef defines the initial state of a scene.
type SceneDef struct {
	Terrain         Drawable
	HelicopterParts HelicopterMeshes
	Helicopters     []HelicopterDef
}

type HelicopterDef struct {
	Position   mgl32.Vec3
	Rotation   mgl32.Vec3
	TimeOffset float32
}

// Scene is the loaded scene graph plus ids of the nodes animation touches.
type Scene struct {
	Graph   *SceneGraph
	Root    NodeId
	Terrain NodeId
	Fleet   []*Helicopter
}

// LoadScene builds root → terrain → helicopters, in definition order.
func LoadScene(def *SceneDef) (*Scene, error) {
	g := NewSceneGraph()
	scene := &Scene{
		Graph:   g,
		Root:    g.NewNamedNode("root"),
		Terrain: g.NewDrawableNode(def.Terrain.Handle, def.Terrain.IndexCount),
	}
	g.Node(scene.Terrain).Name = "terrain"

	for i, hd := range def.Helicopters {
		heli, err := NewHelicopter(g, def.HelicopterParts, hd.Position, hd.Rotation)
		if err != nil {
			return nil, errors.Wrapf(err, "helicopter %d", i)
		}
		heli.TimeOffset = hd.TimeOffset
		if err := g.AddChild(scene.Terrain, heli.Root); err != nil {
			return nil, errors.Wrapf(err, "helicopter %d", i)
		}
		scene.Fleet = append(scene.Fleet, heli)
	}

	if err := g.AddChild(scene.Root, scene.Terrain); err != nil {
		return nil, err
	}
	return scene, nil
}

// Animate moves every helicopter to its pose at elapsed seconds.
func (s *Scene) Animate(elapsed float32) {
	for _, heli := range s.Fleet {
		heli.Animate(s.Graph, elapsed, heli.TimeOffset)
	}
}

// Draw traverses the whole scene from the root.
func (s *Scene) Draw(viewProjection mgl32.Mat4, backend DrawBackend) int {
	return DrawScene(s.Graph, s.Root, viewProjection, mgl32.Ident4(), backend)
}

func FleetFromConfig(entries []FleetEntry) []HelicopterDef {
	defs := make([]HelicopterDef, 0, len(entries))
	for _, e := range entries {
		defs = append(defs, HelicopterDef{
			Position:   mgl32.Vec3(e.Position),
			Rotation:   mgl32.Vec3(e.Rotation),
			TimeOffset: e.TimeOffset,
		})
	}
	return defs
}

// LunarSceneDef assembles the lunar surface scene from meshes already
// registered in assets.
func LunarSceneDef(assets *AssetServer, fleet []FleetEntry) (*SceneDef, error) {
	names := []string{MeshLunarSurface, MeshHelicopterBody, MeshHelicopterDoor, MeshHelicopterMainRotor, MeshHelicopterTailRotor}
	drawables := make([]Drawable, len(names))
	for i, name := range names {
		mesh, err := assets.Mesh(name)
		if err != nil {
			return nil, errors.Wrap(err, "lunar scene")
		}
		drawables[i] = mesh.Drawable()
	}

	return &SceneDef{
		Terrain: drawables[0],
		HelicopterParts: HelicopterMeshes{
			Body:      drawables[1],
			Door:      drawables[2],
			MainRotor: drawables[3],
			TailRotor: drawables[4],
		},
		Helicopters: FleetFromConfig(fleet),
	}, nil
}
