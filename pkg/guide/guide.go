// Package guide reads per-phase guide documents.
//
// Guides are markdown-like text files: heading lines start with '#', step lines start
// with the literal, case-sensitive token "Step". Readers here never return errors to
// presentation code; failures degrade to the sentinel strings below.
package guide

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/appguide/pkg/domain"
)

// Heading sentinels.
const (
	HeadingNotFound   = "(guide not found)"
	HeadingMissing    = "(guide loaded)"
	HeadingUnreadable = "(guide unreadable)"
)

// Preview messages.
const (
	PreviewNotFound     = "Guide not found."
	PreviewContinuation = "... (guide continues)"
)

// DefaultPreviewLines bounds Preview when no positive limit is given.
const DefaultPreviewLines = 30

// StepMarker prefixes every step line.
const StepMarker = "Step"

var errInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// Heading returns the first heading line of the guide at path, stripped of '#'
// markers and surrounding whitespace. Missing files yield HeadingNotFound,
// guides without a heading yield HeadingMissing, and read or decode failures
// yield HeadingUnreadable.
func Heading(path string) string {
	if !isFile(path) {
		return HeadingNotFound
	}

	heading := HeadingMissing
	err := eachLine(path, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			heading = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			return false
		}
		return true
	})
	if err != nil {
		return HeadingUnreadable
	}
	return heading
}

// Preview returns the first maxLines lines of the guide joined by newlines.
// When the guide has more content, a single PreviewContinuation line is appended.
// A non-positive maxLines means DefaultPreviewLines.
func Preview(path string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultPreviewLines
	}
	if !isFile(path) {
		return PreviewNotFound
	}

	var out []string
	more := false
	err := eachLine(path, func(line string) bool {
		if len(out) == maxLines {
			more = true
			return false
		}
		out = append(out, line)
		return true
	})
	if err != nil {
		return fmt.Sprintf("(unable to read guide: %v)", err)
	}
	if more {
		out = append(out, PreviewContinuation)
	}
	return strings.Join(out, "\n")
}

// Steps returns every line that begins with StepMarker, in file order, trimmed.
// A missing guide returns domain.ErrGuideNotFound.
func Steps(path string) ([]string, error) {
	if !isFile(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGuideNotFound, path)
	}

	var steps []string
	err := eachLine(path, func(line string) bool {
		if strings.HasPrefix(line, StepMarker) {
			steps = append(steps, strings.TrimSpace(line))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read guide %s: %w", path, err)
	}
	return steps, nil
}

// eachLine streams the file line by line (without line terminators) until fn
// returns false. Lines must be valid UTF-8.
func eachLine(path string, fn func(line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if !utf8.ValidString(line) {
				return errInvalidUTF8
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !fn(line) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
