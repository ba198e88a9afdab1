package audit

// MaterialRef, ShaderRef and MeshRef are opaque handles owned by the host
// hierarchy. The engine never inspects them; it hands them back to the
// Resolver. A nil handle means an intentionally empty slot.
type (
	MaterialRef any
	ShaderRef   any
	MeshRef     any
)

// Renderer is a renderer-like component attached to a node. Materials
// returns the shared material slots in slot order; nil entries are empty
// slots and are skipped silently during extraction.
type Renderer interface {
	Materials() []MaterialRef
}

// MeshComponent is a mesh-bearing component attached to a node. Mesh may
// return nil when no mesh is assigned.
type MeshComponent interface {
	Mesh() MeshRef
}

// Node is one object in a host hierarchy. Children are enumerated in the
// host's stable order; the tree is assumed acyclic.
type Node interface {
	// Name is the human-readable object name, used as finding subject.
	Name() string
	Children() []Node
	Renderers() []Renderer
	MeshComponents() []MeshComponent

	// InPrefabInstance reports whether the node belongs to a prefab
	// instance. IsPrefabInstanceRoot reports whether it is the nearest
	// instance root of itself, so exactly one node per instance answers
	// true for both.
	InPrefabInstance() bool
	IsPrefabInstanceRoot() bool
	// PrefabAssetPath is the prefab asset's path, or "" when the asset
	// cannot be resolved to a path.
	PrefabAssetPath() string
}

// TextureBinding is one texture-typed property declared by a shader.
// Instance is the bound texture's process-local handle; zero means the
// slot is unbound.
type TextureBinding struct {
	Property string
	Instance int64
}

// Resolver maps opaque handles to durable identities and dependencies.
// Every lookup may fail (ok=false) for in-memory-only or procedurally
// generated resources; such resources are invisible to the audit.
type Resolver interface {
	// MaterialPath resolves a material handle to its asset path.
	MaterialPath(m MaterialRef) (string, bool)
	// MaterialShader resolves the shader assigned to a material.
	MaterialShader(m MaterialRef) (ShaderRef, bool)
	// ShaderName resolves a shader's name. Shader names are assumed
	// globally unique per shader asset.
	ShaderName(s ShaderRef) (string, bool)
	// ShaderTextures enumerates the shader's texture-typed properties in
	// declaration order, including unbound slots.
	ShaderTextures(s ShaderRef) []TextureBinding
	// MeshPath resolves a mesh handle to its asset path.
	MeshPath(mesh MeshRef) (string, bool)
}
