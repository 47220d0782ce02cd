package appguide

import _ "embed"

// Version is the current release of appguide, embedded from the VERSION file.
//
//go:embed VERSION
var Version string
