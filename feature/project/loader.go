package project

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"scene-audit/core/audit"
	"scene-audit/feature/project/models"
)

// sceneNode adapts one parsed ObjectNode to audit.Node.
type sceneNode struct {
	name      string
	prefab    *models.PrefabInfo
	renderers []audit.Renderer
	meshes    []audit.MeshComponent
	children  []audit.Node
}

func (n *sceneNode) Name() string                          { return n.name }
func (n *sceneNode) Children() []audit.Node                { return n.children }
func (n *sceneNode) Renderers() []audit.Renderer           { return n.renderers }
func (n *sceneNode) MeshComponents() []audit.MeshComponent { return n.meshes }
func (n *sceneNode) InPrefabInstance() bool                { return n.prefab != nil }

func (n *sceneNode) IsPrefabInstanceRoot() bool {
	return n.prefab != nil && n.prefab.Root
}

func (n *sceneNode) PrefabAssetPath() string {
	if n.prefab == nil {
		return ""
	}
	return n.prefab.Asset
}

type sceneRenderer struct {
	materials []audit.MaterialRef
}

func (r *sceneRenderer) Materials() []audit.MaterialRef { return r.materials }

type sceneMesh struct {
	mesh audit.MeshRef
}

func (m *sceneMesh) Mesh() audit.MeshRef { return m.mesh }

// modelAsset adapts one manifest entry to audit.ModelAsset.
type modelAsset struct {
	entry models.ModelEntry
}

func (m *modelAsset) Path() string              { return m.entry.Path }
func (m *modelAsset) HasContent() bool          { return !m.entry.Missing }
func (m *modelAsset) IndexFormat() string       { return m.entry.IndexFormat }
func (m *modelAsset) VertexCount() int          { return m.entry.Vertices }
func (m *modelAsset) SubmeshIndexCounts() []int { return m.entry.Submeshes }
func (m *modelAsset) Readable() bool            { return m.entry.Readable }

// Loader reads a project's audit inputs from a Source.
type Loader struct {
	src Source
	cfg Config
}

// NewLoader creates a loader over src.
func NewLoader(src Source, cfg Config) *Loader {
	return &Loader{src: src, cfg: cfg}
}

// LoadCatalog reads and parses catalog.json into a resolver. A missing
// or unreadable catalog yields an error; the caller decides whether to
// run without shader/texture resolution.
func (l *Loader) LoadCatalog(ctx context.Context) (*CatalogResolver, error) {
	data, err := l.src.Read(ctx, l.cfg.CatalogObject)
	if err != nil {
		return nil, err
	}
	var catalog models.CatalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.cfg.CatalogObject, err)
	}
	return NewCatalogResolver(catalog), nil
}

// LoadModels reads and parses the model manifest.
func (l *Loader) LoadModels(ctx context.Context) ([]audit.ModelAsset, error) {
	data, err := l.src.Read(ctx, l.cfg.ModelsObject)
	if err != nil {
		return nil, err
	}
	var manifest models.ModelsFile
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.cfg.ModelsObject, err)
	}
	assets := make([]audit.ModelAsset, 0, len(manifest.Models))
	for _, entry := range manifest.Models {
		assets = append(assets, &modelAsset{entry: entry})
	}
	return assets, nil
}

// ListScenes returns the project's scene file names in stable order.
func (l *Loader) ListScenes(ctx context.Context) ([]string, error) {
	return l.src.List(ctx, l.cfg.ScenesPrefix, l.cfg.SceneExtension)
}

// LoadScene reads and parses one scene file into a traversal unit.
func (l *Loader) LoadScene(ctx context.Context, name string) (audit.SceneUnit, error) {
	data, err := l.src.Read(ctx, name)
	if err != nil {
		return audit.SceneUnit{}, err
	}
	var scene models.SceneFile
	if err := json.Unmarshal(data, &scene); err != nil {
		return audit.SceneUnit{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	unit := audit.SceneUnit{
		Name: scene.Name,
		Path: name,
	}
	if unit.Name == "" {
		unit.Name = sceneNameFromPath(name)
	}
	for i := range scene.Objects {
		unit.Roots = append(unit.Roots, buildNode(&scene.Objects[i]))
	}
	return unit, nil
}

// buildNode converts a parsed object subtree into audit nodes.
func buildNode(obj *models.ObjectNode) audit.Node {
	node := &sceneNode{
		name:   obj.Name,
		prefab: obj.Prefab,
	}
	for _, spec := range obj.Renderers {
		renderer := &sceneRenderer{}
		for _, slot := range spec.Materials {
			if slot == nil {
				renderer.materials = append(renderer.materials, nil)
				continue
			}
			renderer.materials = append(renderer.materials, materialHandle(*slot))
		}
		node.renderers = append(node.renderers, renderer)
	}
	for _, spec := range obj.Meshes {
		if spec.Asset == nil {
			node.meshes = append(node.meshes, &sceneMesh{mesh: nil})
			continue
		}
		node.meshes = append(node.meshes, &sceneMesh{mesh: meshHandle(*spec.Asset)})
	}
	for i := range obj.Children {
		node.children = append(node.children, buildNode(&obj.Children[i]))
	}
	return node
}

func sceneNameFromPath(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, ".scene.json")
}
