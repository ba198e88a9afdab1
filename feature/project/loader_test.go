package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"scene-audit/core/audit"
	"scene-audit/feature/project/models"

	"github.com/stretchr/testify/assert"
)

func writeProjectFile(t *testing.T, root, name, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(name))
	assert.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	assert.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func testConfig() Config {
	return Config{
		Source:         SourceDir,
		ScenesPrefix:   "scenes/",
		SceneExtension: ".scene.json",
		CatalogObject:  "catalog.json",
		ModelsObject:   "models.json",
	}
}

func TestLoadScene_BuildsHierarchy(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "scenes/lobby.scene.json", `{
		"name": "lobby",
		"objects": [
			{
				"name": "A",
				"prefab": {"asset": "prefabs/p.prefab", "root": true},
				"renderers": [{"materials": ["materials/m1.mat", null]}],
				"children": [
					{"name": "B", "prefab": {"asset": "prefabs/p.prefab", "root": false}}
				]
			},
			{"name": "C", "meshes": [{"asset": "models/rock.fbx"}]}
		]
	}`)

	loader := NewLoader(NewDirSource(root), testConfig())
	unit, err := loader.LoadScene(context.Background(), "scenes/lobby.scene.json")
	assert.NoError(t, err)

	assert.Equal(t, "lobby", unit.Name)
	assert.Equal(t, "scenes/lobby.scene.json", unit.Path)
	assert.Len(t, unit.Roots, 2)

	a := unit.Roots[0]
	assert.Equal(t, "A", a.Name())
	assert.True(t, a.InPrefabInstance())
	assert.True(t, a.IsPrefabInstanceRoot())
	assert.Equal(t, "prefabs/p.prefab", a.PrefabAssetPath())
	assert.Len(t, a.Renderers(), 1)
	slots := a.Renderers()[0].Materials()
	assert.Len(t, slots, 2)
	assert.NotNil(t, slots[0])
	assert.Nil(t, slots[1])

	b := a.Children()[0]
	assert.True(t, b.InPrefabInstance())
	assert.False(t, b.IsPrefabInstanceRoot())

	c := unit.Roots[1]
	assert.Len(t, c.MeshComponents(), 1)
	assert.NotNil(t, c.MeshComponents()[0].Mesh())
}

func TestLoadScene_NameFallsBackToFileName(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "scenes/unnamed.scene.json", `{"objects": []}`)

	loader := NewLoader(NewDirSource(root), testConfig())
	unit, err := loader.LoadScene(context.Background(), "scenes/unnamed.scene.json")
	assert.NoError(t, err)
	assert.Equal(t, "unnamed", unit.Name)
}

func TestLoadScene_CorruptFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "scenes/bad.scene.json", `{not json`)

	loader := NewLoader(NewDirSource(root), testConfig())
	_, err := loader.LoadScene(context.Background(), "scenes/bad.scene.json")
	assert.Error(t, err)
}

func TestLoadModels_Manifest(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "models.json", `{
		"models": [
			{"path": "models/rock.fbx", "index_format": "UInt16", "vertices": 240, "submeshes": [300, 150], "readable": true},
			{"path": "models/walk.fbx", "missing": true}
		]
	}`)

	loader := NewLoader(NewDirSource(root), testConfig())
	assets, err := loader.LoadModels(context.Background())
	assert.NoError(t, err)
	assert.Len(t, assets, 2)

	rock := assets[0]
	assert.Equal(t, "models/rock.fbx", rock.Path())
	assert.True(t, rock.HasContent())
	assert.Equal(t, "UInt16", rock.IndexFormat())
	assert.Equal(t, 240, rock.VertexCount())
	assert.Equal(t, []int{300, 150}, rock.SubmeshIndexCounts())
	assert.True(t, rock.Readable())

	// Animation-only container resolves to no content.
	assert.False(t, assets[1].HasContent())
}

func TestCatalogResolver_Resolution(t *testing.T) {
	resolver := NewCatalogResolver(models.CatalogFile{
		Materials: map[string]models.MaterialEntry{
			"materials/wall.mat": {Shader: "Standard"},
			"materials/bare.mat": {},
		},
		Shaders: map[string]models.ShaderEntry{
			"Standard": {Textures: []models.TextureSlot{
				{Property: "_MainTex", Texture: "textures/wall_albedo"},
				{Property: "_Detail", Texture: ""},
			}},
		},
	})

	path, ok := resolver.MaterialPath(materialHandle("materials/wall.mat"))
	assert.True(t, ok)
	assert.Equal(t, "materials/wall.mat", path)

	shader, ok := resolver.MaterialShader(materialHandle("materials/wall.mat"))
	assert.True(t, ok)
	name, ok := resolver.ShaderName(shader)
	assert.True(t, ok)
	assert.Equal(t, "Standard", name)

	// A material without an assigned shader resolves no shader.
	_, ok = resolver.MaterialShader(materialHandle("materials/bare.mat"))
	assert.False(t, ok)

	// A material missing from the catalog still resolves its path.
	path, ok = resolver.MaterialPath(materialHandle("materials/unknown.mat"))
	assert.True(t, ok)
	assert.Equal(t, "materials/unknown.mat", path)
	_, ok = resolver.MaterialShader(materialHandle("materials/unknown.mat"))
	assert.False(t, ok)

	bindings := resolver.ShaderTextures(shader)
	assert.Len(t, bindings, 2)
	assert.Equal(t, "_MainTex", bindings[0].Property)
	assert.NotZero(t, bindings[0].Instance)
	// Unbound slot reports a zero instance.
	assert.Zero(t, bindings[1].Instance)
}

// TestCatalogResolver_TextureInterning: the same texture name maps to
// the same instance handle for the resolver's lifetime, and distinct
// names never collide.
func TestCatalogResolver_TextureInterning(t *testing.T) {
	resolver := NewCatalogResolver(models.CatalogFile{})

	first := resolver.TextureInstance("textures/a")
	second := resolver.TextureInstance("textures/b")

	assert.NotZero(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, resolver.TextureInstance("textures/a"))
}

// TestLoadedScene_WalksCorrectly wires a parsed scene through the real
// engine to confirm the adapter honors the extraction contract.
func TestLoadedScene_WalksCorrectly(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "scenes/s.scene.json", `{
		"name": "s",
		"objects": [
			{
				"name": "A",
				"prefab": {"asset": "prefabs/p.prefab", "root": true},
				"renderers": [{"materials": ["materials/m1.mat"]}],
				"children": [{"name": "B", "prefab": {"asset": "prefabs/p.prefab", "root": false}}]
			},
			{"name": "C", "renderers": [{"materials": ["materials/m1.mat"]}]}
		]
	}`)
	writeProjectFile(t, root, "catalog.json", `{
		"materials": {"materials/m1.mat": {"shader": "Lit"}},
		"shaders": {"Lit": {"textures": [{"property": "_MainTex", "texture": "textures/t1"}]}}
	}`)

	loader := NewLoader(NewDirSource(root), testConfig())
	resolver, err := loader.LoadCatalog(context.Background())
	assert.NoError(t, err)
	unit, err := loader.LoadScene(context.Background(), "scenes/s.scene.json")
	assert.NoError(t, err)

	collector := audit.NewCollector()
	walker := audit.NewWalker(resolver)
	for _, node := range unit.Roots {
		walker.Walk(node, collector)
	}

	assert.Equal(t, audit.Stats{
		Objects:   3,
		Prefabs:   1,
		Materials: 1,
		Shaders:   1,
		Textures:  1,
	}, collector.Stats())
}
