package project

import (
	"scene-audit/core/audit"
	"scene-audit/feature/project/models"
)

// Handle types the catalog resolver hands to the audit engine. They stay
// opaque to the engine and only carry the lookup key.
type (
	materialHandle string
	shaderHandle   string
	meshHandle     string
)

// CatalogResolver implements audit.Resolver on top of the project's
// asset catalog. Texture names are interned to process-local instance
// handles, mirroring a host where loaded textures have no stable path.
type CatalogResolver struct {
	materials map[string]models.MaterialEntry
	shaders   map[string]models.ShaderEntry

	textureInstances map[string]int64
	nextInstance     int64
}

// NewCatalogResolver builds a resolver from a parsed catalog.
func NewCatalogResolver(catalog models.CatalogFile) *CatalogResolver {
	r := &CatalogResolver{
		materials:        catalog.Materials,
		shaders:          catalog.Shaders,
		textureInstances: make(map[string]int64),
	}
	if r.materials == nil {
		r.materials = map[string]models.MaterialEntry{}
	}
	if r.shaders == nil {
		r.shaders = map[string]models.ShaderEntry{}
	}
	return r
}

// TextureInstance interns a texture name to a stable, non-zero instance
// handle for the lifetime of this resolver.
func (r *CatalogResolver) TextureInstance(name string) int64 {
	if handle, ok := r.textureInstances[name]; ok {
		return handle
	}
	r.nextInstance++
	r.textureInstances[name] = r.nextInstance
	return r.nextInstance
}

func (r *CatalogResolver) MaterialPath(m audit.MaterialRef) (string, bool) {
	handle, ok := m.(materialHandle)
	if !ok || handle == "" {
		return "", false
	}
	return string(handle), true
}

func (r *CatalogResolver) MaterialShader(m audit.MaterialRef) (audit.ShaderRef, bool) {
	handle, ok := m.(materialHandle)
	if !ok {
		return nil, false
	}
	entry, ok := r.materials[string(handle)]
	if !ok || entry.Shader == "" {
		return nil, false
	}
	return shaderHandle(entry.Shader), true
}

func (r *CatalogResolver) ShaderName(s audit.ShaderRef) (string, bool) {
	handle, ok := s.(shaderHandle)
	if !ok || handle == "" {
		return "", false
	}
	return string(handle), true
}

func (r *CatalogResolver) ShaderTextures(s audit.ShaderRef) []audit.TextureBinding {
	handle, ok := s.(shaderHandle)
	if !ok {
		return nil
	}
	entry, ok := r.shaders[string(handle)]
	if !ok {
		return nil
	}
	bindings := make([]audit.TextureBinding, 0, len(entry.Textures))
	for _, slot := range entry.Textures {
		binding := audit.TextureBinding{Property: slot.Property}
		if slot.Texture != "" {
			binding.Instance = r.TextureInstance(slot.Texture)
		}
		bindings = append(bindings, binding)
	}
	return bindings
}

func (r *CatalogResolver) MeshPath(mesh audit.MeshRef) (string, bool) {
	handle, ok := mesh.(meshHandle)
	if !ok || handle == "" {
		return "", false
	}
	return string(handle), true
}
