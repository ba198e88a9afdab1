package project

import (
	"context"
	"testing"

	"scene-audit/core/audit"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func writeFixtureProject(t *testing.T, root string) {
	t.Helper()
	writeProjectFile(t, root, "catalog.json", `{
		"materials": {"materials/m1.mat": {"shader": "Lit"}},
		"shaders": {"Lit": {"textures": [{"property": "_MainTex", "texture": "textures/t1"}]}}
	}`)
	writeProjectFile(t, root, "models.json", `{
		"models": [
			{"path": "models/rock.fbx", "index_format": "UInt16", "vertices": 100, "submeshes": [60], "readable": false}
		]
	}`)
	writeProjectFile(t, root, "scenes/a.scene.json", `{
		"name": "a",
		"objects": [
			{"name": "n1", "renderers": [{"materials": ["materials/m1.mat"]}]},
			{"name": "n2", "meshes": [{"asset": "models/rock.fbx"}]}
		]
	}`)
	writeProjectFile(t, root, "scenes/b.scene.json", `{
		"name": "b",
		"objects": [
			{"name": "n3", "renderers": [{"materials": ["materials/m1.mat"]}]}
		]
	}`)
}

func TestAuditorRun_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFixtureProject(t, root)

	auditor := NewAuditor(NewLoader(NewDirSource(root), testConfig()), zap.NewNop())
	sink := &audit.MemorySink{}

	result, err := auditor.Run(context.Background(), sink)
	assert.NoError(t, err)

	// One model record, then the scenes in listing order.
	assert.Len(t, sink.Records, 3)
	assert.Equal(t, audit.CategoryModel, sink.Records[0].Category)
	assert.Equal(t, "a", sink.Records[1].Subject)
	assert.Equal(t, "b", sink.Records[2].Subject)

	// The shared material across scenes stays one distinct material;
	// the model counted by both the scan and scene a stays one model.
	assert.Equal(t, audit.Stats{
		Objects:   3,
		Prefabs:   0,
		Materials: 1,
		Models:    1,
		Shaders:   1,
		Textures:  1,
	}, result.Stats)

	assert.Len(t, result.Scenes, 2)
	assert.Equal(t, 2, result.Scenes[0].Stats.Objects)
	assert.Equal(t, 1, result.Scenes[1].Stats.Objects)
	assert.Equal(t, 1, result.ModelStats.Models)
}

func TestAuditorRun_SkipsUnreadableScene(t *testing.T) {
	root := t.TempDir()
	writeFixtureProject(t, root)
	writeProjectFile(t, root, "scenes/corrupt.scene.json", `{broken`)

	auditor := NewAuditor(NewLoader(NewDirSource(root), testConfig()), zap.NewNop())
	sink := &audit.MemorySink{}

	result, err := auditor.Run(context.Background(), sink)
	assert.NoError(t, err)

	// The corrupt scene contributes nothing but does not abort the run.
	assert.Equal(t, []string{"scenes/corrupt.scene.json"}, result.SkippedScenes)
	assert.Len(t, result.Scenes, 2)
	assert.Equal(t, 3, result.Stats.Objects)
}

func TestAuditorRun_WithoutCatalog(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "scenes/a.scene.json", `{
		"name": "a",
		"objects": [{"name": "n1", "renderers": [{"materials": ["materials/m1.mat"]}]}]
	}`)

	auditor := NewAuditor(NewLoader(NewDirSource(root), testConfig()), zap.NewNop())
	result, err := auditor.Run(context.Background(), &audit.MemorySink{})
	assert.NoError(t, err)

	// Materials still count without a catalog; their shader and texture
	// dependents are unresolvable.
	assert.Equal(t, 1, result.Stats.Materials)
	assert.Equal(t, 0, result.Stats.Shaders)
	assert.Equal(t, 0, result.Stats.Textures)
}

func TestAuditorRun_CancelledBeforeUnits(t *testing.T) {
	root := t.TempDir()
	writeFixtureProject(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	auditor := NewAuditor(NewLoader(NewDirSource(root), testConfig()), zap.NewNop())
	_, err := auditor.Run(ctx, &audit.MemorySink{})
	assert.ErrorIs(t, err, context.Canceled)
}
