package lunar

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

var (
	ErrAssetExists   = errors.New("asset already registered")
	ErrAssetNotFound = errors.New("asset not found")
)

// MeshAsset describes geometry that has been handed to the backend.
type MeshAsset struct {
	Id         AssetId
	Name       string
	Handle     GeometryHandle
	IndexCount int32
}

func (m MeshAsset) Drawable() Drawable {
	return Drawable{Handle: m.Handle, IndexCount: m.IndexCount}
}

// AssetServer hands out geometry handles for named meshes. Handle 0 is
// never issued, matching GL's reserved vertex array name.
type AssetServer struct {
	meshes     map[AssetId]MeshAsset
	byName     map[string]AssetId
	nextHandle GeometryHandle
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes: make(map[AssetId]MeshAsset),
		byName: make(map[string]AssetId),
	}
}

func (server *AssetServer) RegisterMesh(name string, indexCount int32) (MeshAsset, error) {
	if name == "" {
		return MeshAsset{}, errors.New("mesh name is empty")
	}
	if indexCount < 0 {
		return MeshAsset{}, errors.Errorf("mesh %q: negative index count %d", name, indexCount)
	}
	if _, ok := server.byName[name]; ok {
		return MeshAsset{}, errors.Wrapf(ErrAssetExists, "mesh %q", name)
	}

	server.nextHandle++
	asset := MeshAsset{
		Id:         makeAssetId(),
		Name:       name,
		Handle:     server.nextHandle,
		IndexCount: indexCount,
	}
	server.meshes[asset.Id] = asset
	server.byName[name] = asset.Id
	return asset, nil
}

func (server *AssetServer) Mesh(name string) (MeshAsset, error) {
	id, ok := server.byName[name]
	if !ok {
		return MeshAsset{}, errors.Wrapf(ErrAssetNotFound, "mesh %q", name)
	}
	return server.meshes[id], nil
}

func (server *AssetServer) MeshById(id AssetId) (MeshAsset, error) {
	asset, ok := server.meshes[id]
	if !ok {
		return MeshAsset{}, errors.Wrapf(ErrAssetNotFound, "mesh id %s", id)
	}
	return asset, nil
}

func (server *AssetServer) Len() int {
	return len(server.meshes)
}

type AssetServerModule struct {
	Server *AssetServer
}

func (m AssetServerModule) Install(app *App, cmd *Commands) {
	server := m.Server
	if server == nil {
		server = NewAssetServer()
	}
	cmd.AddResources(server)
}
