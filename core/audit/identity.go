package audit

import "fmt"

// IdentityKind discriminates the two ways a resource can be addressed.
type IdentityKind uint8

const (
	// KindPath identifies a resource by its canonical project path
	// (prefabs, materials, models). Paths are assumed already normalized
	// by the host's path convention.
	KindPath IdentityKind = iota + 1
	// KindInstance identifies a resource by a process-local instance
	// handle (resources without a stable path, e.g. loaded textures).
	KindInstance
)

// ResourceIdentity is the durable identity of a resource. Two identities
// are equal iff their kind and underlying value are equal, which makes the
// struct directly usable as a map key.
type ResourceIdentity struct {
	Kind     IdentityKind
	Path     string
	Instance int64
}

// PathIdentity returns a path-addressed identity.
func PathIdentity(path string) ResourceIdentity {
	return ResourceIdentity{Kind: KindPath, Path: path}
}

// InstanceIdentity returns an instance-handle identity.
func InstanceIdentity(handle int64) ResourceIdentity {
	return ResourceIdentity{Kind: KindInstance, Instance: handle}
}

// IsZero reports whether the identity is unset.
func (r ResourceIdentity) IsZero() bool {
	return r.Kind == 0
}

// String renders the identity for findings and logs.
func (r ResourceIdentity) String() string {
	switch r.Kind {
	case KindPath:
		return r.Path
	case KindInstance:
		return fmt.Sprintf("instance:%d", r.Instance)
	default:
		return "<unset>"
	}
}
