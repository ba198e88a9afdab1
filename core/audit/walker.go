package audit

// Walker performs the pre-order depth-first traversal of a node hierarchy
// and hosts the three extraction rules. A Walker is stateless beyond its
// resolver and can be shared across traversal units; all aggregation
// state lives in the Collector passed to each call.
type Walker struct {
	resolver Resolver
}

// NewWalker creates a walker backed by the given resolver.
func NewWalker(resolver Resolver) *Walker {
	return &Walker{resolver: resolver}
}

// Walk visits node and all its descendants exactly once: the node is
// counted, all three extractors run on it, then each child is walked in
// enumeration order. Depth is bounded only by the actual tree depth.
func (w *Walker) Walk(node Node, c *Collector) {
	c.ObjectCount++
	w.ExtractMaterials(node, c)
	w.ExtractModels(node, c)
	w.ExtractPrefabRoot(node, c)
	for _, child := range node.Children() {
		w.Walk(child, c)
	}
}

// ExtractMaterials counts every shared material slot on every renderer of
// the node. Slots are not deduplicated within a renderer. Empty slots and
// materials without a resolvable path are skipped silently. On first
// sight of a material identity the material's shader and bound textures
// are extracted too; a previously counted material's dependents are
// assumed already counted and are not re-walked, so reassignments after
// first sight are not reflected.
func (w *Walker) ExtractMaterials(node Node, c *Collector) {
	for _, renderer := range node.Renderers() {
		for _, material := range renderer.Materials() {
			if material == nil {
				continue
			}
			path, ok := w.resolver.MaterialPath(material)
			if !ok || path == "" {
				continue
			}
			if EnsureAndIncrement(c.Materials, PathIdentity(path)) == 1 {
				w.extractShader(material, c)
			}
		}
	}
}

// extractShader counts the material's shader (keyed by shader name) and
// every bound texture the shader declares.
func (w *Walker) extractShader(material MaterialRef, c *Collector) {
	shader, ok := w.resolver.MaterialShader(material)
	if !ok {
		return
	}
	name, ok := w.resolver.ShaderName(shader)
	if !ok || name == "" {
		return
	}
	EnsureAndIncrement(c.Shaders, PathIdentity(name))
	for _, binding := range w.resolver.ShaderTextures(shader) {
		if binding.Instance == 0 {
			continue
		}
		EnsureAndIncrement(c.Textures, InstanceIdentity(binding.Instance))
	}
}

// ExtractModels counts the mesh asset of every mesh-bearing component on
// the node. Unassigned meshes and meshes without a resolvable path
// (procedurally generated) are skipped silently.
func (w *Walker) ExtractModels(node Node, c *Collector) {
	for _, component := range node.MeshComponents() {
		mesh := component.Mesh()
		if mesh == nil {
			continue
		}
		path, ok := w.resolver.MeshPath(mesh)
		if !ok || path == "" {
			continue
		}
		EnsureAndIncrement(c.Models, PathIdentity(path))
	}
}

// ExtractPrefabRoot counts the node's prefab asset iff the node is part
// of a prefab instance and is that instance's root, so each instance is
// counted exactly once, attributed to its topmost node.
func (w *Walker) ExtractPrefabRoot(node Node, c *Collector) {
	if !node.InPrefabInstance() || !node.IsPrefabInstanceRoot() {
		return
	}
	path := node.PrefabAssetPath()
	if path == "" {
		return
	}
	EnsureAndIncrement(c.Prefabs, PathIdentity(path))
}
