package registry

import (
	"path/filepath"

	"github.com/aretw0/appguide/pkg/domain"
)

// DefaultGuideDir is the folder, relative to the project root, holding phase guides.
const DefaultGuideDir = "copilot_brain"

// PhaseSpec names the on-disk pieces of one phase.
type PhaseSpec struct {
	Index  int
	Title  string
	Folder string
	Guide  string
}

// DefaultSpecs lists the five workflow phases.
var DefaultSpecs = []PhaseSpec{
	{Index: 1, Title: "Phase 1: Concept & Strategy", Folder: "phase1_concept_strategy", Guide: "phase_1_concept_strategy.md"},
	{Index: 2, Title: "Phase 2: Development Planning", Folder: "phase2_development_planning", Guide: "phase_2_dev_planning.md"},
	{Index: 3, Title: "Phase 3: AI Execution", Folder: "phase3_ai_execution", Guide: "phase_3_ai_execution.md"},
	{Index: 4, Title: "Phase 4: Testing & Iteration", Folder: "phase4_testing_iteration", Guide: "phase_4_testing_iteration.md"},
	{Index: 5, Title: "Phase 5: Launch & Growth", Folder: "phase5_launch_growth", Guide: "phase_5_launch_growth.md"},
}

// Layout locates phase folders and guides on disk.
type Layout struct {
	// Root is the project root containing the phase folders.
	Root string
	// GuideDir holds the guide documents. Relative paths are resolved against Root.
	GuideDir string
}

func (l Layout) guideDir() string {
	dir := l.GuideDir
	if dir == "" {
		dir = DefaultGuideDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(l.Root, dir)
}

// FolderFor returns the folder path of the phase with the given spec.
func (l Layout) FolderFor(spec PhaseSpec) string {
	return filepath.Join(l.Root, spec.Folder)
}

// Default builds the standard five-phase registry for a layout.
func Default(l Layout) (*Registry, error) {
	b := NewBuilder()
	for _, spec := range DefaultSpecs {
		b.Add(domain.PhaseDescriptor{
			Index:     spec.Index,
			Title:     spec.Title,
			Folder:    l.FolderFor(spec),
			GuidePath: filepath.Join(l.guideDir(), spec.Guide),
			Detector:  DetectorFor(spec.Index),
		})
	}
	return b.Build()
}
