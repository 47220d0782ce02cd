package registry

import (
	"path/filepath"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/scan"
)

// DirectFiles detects any non-hidden regular file directly in the phase folder.
type DirectFiles struct{}

// Detect implements domain.ProgressDetector.
func (DirectFiles) Detect(folder string) bool {
	return scan.HasDirectFiles(folder)
}

// AnySubtree detects any non-hidden file anywhere under one of the named subfolders.
// Subfolders use forward slashes and are relative to the phase folder.
type AnySubtree struct {
	Subdirs []string
}

// Detect implements domain.ProgressDetector.
func (d AnySubtree) Detect(folder string) bool {
	for _, sub := range d.Subdirs {
		if scan.HasFiles(filepath.Join(folder, filepath.FromSlash(sub))) {
			return true
		}
	}
	return false
}

// MarkerFiles detects any of the named summary files directly in the phase folder.
type MarkerFiles struct {
	Names []string
}

// Detect implements domain.ProgressDetector.
func (d MarkerFiles) Detect(folder string) bool {
	for _, name := range d.Names {
		if scan.FileExists(filepath.Join(folder, name)) {
			return true
		}
	}
	return false
}

// AnyOf reports progress when any of its detectors does.
type AnyOf []domain.ProgressDetector

// Detect implements domain.ProgressDetector.
func (d AnyOf) Detect(folder string) bool {
	for _, det := range d {
		if det != nil && det.Detect(folder) {
			return true
		}
	}
	return false
}

// Phase-specific artifact names.
var (
	PlanningSubdirs  = []string{"deliverables", "screen_flows"}
	ExecutionSubdirs = []string{"codebase", "tests"}
	TestingSubdirs   = []string{"tests/unit", "tests/integration", "tests/e2e", "tests/load", "tests/security"}
	TestingMarkers   = []string{"test_results.md", "bug_report.md", "ci_cd_logs.md"}
	LaunchSubdirs    = []string{"launch_materials", "marketing", "monetization", "retention", "trust_safety"}
	LaunchMarkers    = []string{"appstore_metadata.md", "marketing_funnel.md", "monetization.md", "retention_systems.md", "trust_safety.md"}
)

// DetectorFor returns the progress detector for a phase index, or nil if unknown.
func DetectorFor(index int) domain.ProgressDetector {
	switch index {
	case 1:
		return DirectFiles{}
	case 2:
		return AnySubtree{Subdirs: PlanningSubdirs}
	case 3:
		return AnySubtree{Subdirs: ExecutionSubdirs}
	case 4:
		return AnyOf{AnySubtree{Subdirs: TestingSubdirs}, MarkerFiles{Names: TestingMarkers}}
	case 5:
		return AnyOf{AnySubtree{Subdirs: LaunchSubdirs}, MarkerFiles{Names: LaunchMarkers}}
	}
	return nil
}
