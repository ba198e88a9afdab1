package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"scene-audit/feature/project"
)

// PrintSummary renders an audit run as a console table: one row per
// scene, the model scan, and the deduplicated project-wide total.
func PrintSummary(writer io.Writer, result *project.RunResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "SCENE\tOBJECTS\tPREFABS\tMATERIALS\tMODELS\tSHADERS\tTEXTURES"); err != nil {
		return err
	}
	for _, scene := range result.Scenes {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			scene.Name,
			scene.Stats.Objects,
			scene.Stats.Prefabs,
			scene.Stats.Materials,
			scene.Stats.Models,
			scene.Stats.Shaders,
			scene.Stats.Textures,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(tw, "(model scan)\t-\t-\t-\t%d\t-\t-\n", result.ModelStats.Models); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%d\t%d\t%d\t%d\t%d\t%d\n",
		result.Stats.Objects,
		result.Stats.Prefabs,
		result.Stats.Materials,
		result.Stats.Models,
		result.Stats.Shaders,
		result.Stats.Textures,
	); err != nil {
		return err
	}

	if len(result.SkippedScenes) > 0 {
		if _, err := fmt.Fprintln(tw, "\nSKIPPED SCENE"); err != nil {
			return err
		}
		for _, name := range result.SkippedScenes {
			if _, err := fmt.Fprintln(tw, name); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
