package project

// Config holds configuration for locating a project's audit inputs.
type Config struct {
	// Source selects where project files live: "dir" or "storage".
	Source string `mapstructure:"source" default:"dir"`
	// Path is the project root directory for the dir source.
	Path string `mapstructure:"path" default:"."`
	// ScenesPrefix is the prefix under which scene files are listed.
	ScenesPrefix string `mapstructure:"scenes_prefix" default:"scenes/"`
	// SceneExtension is the file extension identifying scene files.
	SceneExtension string `mapstructure:"scene_extension" default:".scene.json"`
	// CatalogObject is the asset catalog's object name.
	CatalogObject string `mapstructure:"catalog_object" default:"catalog.json"`
	// ModelsObject is the model manifest's object name.
	ModelsObject string `mapstructure:"models_object" default:"models.json"`
}

const (
	SourceDir     = "dir"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source kind is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDir, SourceStorage:
		return true
	default:
		return false
	}
}
