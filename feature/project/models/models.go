// Package models defines the JSON file formats of a project under audit.
//
// A project consists of scene files (object hierarchies), an asset
// catalog (material and shader definitions), and a model manifest
// (per-model geometry data).
package models

// SceneFile is one *.scene.json file: a named scene with its root
// objects in authoring order.
type SceneFile struct {
	Name    string       `json:"name"`
	Objects []ObjectNode `json:"objects"`
}

// ObjectNode is one object in a scene hierarchy.
type ObjectNode struct {
	Name string `json:"name"`

	// Prefab is set when the object belongs to a prefab instance.
	Prefab *PrefabInfo `json:"prefab,omitempty"`

	// Renderers holds the object's renderer components.
	Renderers []RendererSpec `json:"renderers,omitempty"`

	// Meshes holds the object's mesh-bearing components.
	Meshes []MeshSpec `json:"meshes,omitempty"`

	Children []ObjectNode `json:"children,omitempty"`
}

// PrefabInfo describes prefab instance membership.
type PrefabInfo struct {
	// Asset is the prefab asset path. Empty means unresolvable.
	Asset string `json:"asset"`
	// Root marks the instance's topmost node.
	Root bool `json:"root"`
}

// RendererSpec is one renderer component. Materials lists the shared
// material slots in slot order; a null entry is an intentionally empty
// slot.
type RendererSpec struct {
	Materials []*string `json:"materials"`
}

// MeshSpec is one mesh-bearing component. A null asset means no mesh is
// assigned; the special absence of the path (empty string) marks a
// procedurally generated mesh with no stable path.
type MeshSpec struct {
	Asset *string `json:"asset"`
}

// CatalogFile is catalog.json: the project's material and shader
// definitions, keyed by material path and shader name respectively.
type CatalogFile struct {
	Materials map[string]MaterialEntry `json:"materials"`
	Shaders   map[string]ShaderEntry   `json:"shaders"`
}

// MaterialEntry assigns a shader to a material.
type MaterialEntry struct {
	Shader string `json:"shader"`
}

// ShaderEntry declares a shader's texture-typed properties in
// declaration order.
type ShaderEntry struct {
	Textures []TextureSlot `json:"textures"`
}

// TextureSlot is one texture property. An empty Texture means the slot
// is declared but unbound.
type TextureSlot struct {
	Property string `json:"property"`
	Texture  string `json:"texture"`
}

// ModelsFile is models.json: the project's model assets.
type ModelsFile struct {
	Models []ModelEntry `json:"models"`
}

// ModelEntry is one model asset's geometry data.
type ModelEntry struct {
	Path string `json:"path"`
	// Missing marks containers with no mesh content (animation-only
	// imports); they are skipped by the model scan.
	Missing     bool   `json:"missing,omitempty"`
	IndexFormat string `json:"index_format"`
	Vertices    int    `json:"vertices"`
	// Submeshes holds per-submesh index counts.
	Submeshes []int `json:"submeshes"`
	Readable  bool  `json:"readable"`
}
