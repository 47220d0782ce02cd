package maintenance

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/appguide/pkg/scan"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BrokenLink is a relative markdown link whose target does not exist.
type BrokenLink struct {
	// File is the markdown file, relative to the validated root.
	File   string
	Target string
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("Broken link in %s: %s", b.File, b.Target)
}

// ValidateLinks parses every markdown file below root (hidden directories
// excluded) and reports relative links and images that point nowhere.
// URLs, mailto links and in-page anchors are not checked.
func ValidateLinks(root string) ([]BrokenLink, error) {
	md := goldmark.New()
	var broken []BrokenLink

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && scan.IsHidden(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		rel, _ := filepath.Rel(root, path)
		for _, target := range linkTargets(md, src) {
			if !targetExists(root, filepath.Dir(path), target) {
				broken = append(broken, BrokenLink{File: filepath.ToSlash(rel), Target: target})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(broken, func(i, j int) bool { return broken[i].File < broken[j].File })
	return broken, nil
}

func linkTargets(md goldmark.Markdown, src []byte) []string {
	doc := md.Parser().Parse(text.NewReader(src))
	var targets []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			targets = append(targets, string(v.Destination))
		case *ast.Image:
			targets = append(targets, string(v.Destination))
		}
		return ast.WalkContinue, nil
	})
	return targets
}

func targetExists(root, dir, target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return true
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	if u.Scheme != "" || u.Host != "" {
		// External (http, https, mailto, ...).
		return true
	}

	p := filepath.FromSlash(u.Path)
	if p == "" {
		return true
	}
	if strings.HasPrefix(u.Path, "/") {
		p = filepath.Join(root, p)
	} else {
		p = filepath.Join(dir, p)
	}
	_, err = os.Stat(p)
	return err == nil
}
