package report

import (
	"bytes"
	"testing"

	"scene-audit/core/audit"
	"scene-audit/feature/project"

	"github.com/stretchr/testify/assert"
)

func TestPrintSummary(t *testing.T) {
	result := &project.RunResult{
		Stats:      audit.Stats{Objects: 5, Prefabs: 1, Materials: 2, Models: 1, Shaders: 1, Textures: 3},
		ModelStats: audit.Stats{Models: 1},
		Scenes: []project.SceneResult{
			{Name: "lobby", Path: "scenes/lobby.scene.json", Stats: audit.Stats{Objects: 3, Materials: 2}},
			{Name: "arena", Path: "scenes/arena.scene.json", Stats: audit.Stats{Objects: 2, Materials: 1}},
		},
		SkippedScenes: []string{"scenes/corrupt.scene.json"},
	}

	var buf bytes.Buffer
	assert.NoError(t, PrintSummary(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "lobby")
	assert.Contains(t, out, "arena")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "SKIPPED SCENE")
	assert.Contains(t, out, "scenes/corrupt.scene.json")
}
