// Package pathexp expands notebook arguments that contain wildcards.
//
// Shells usually expand globs before nbclean sees them, but Windows shells
// and quoted arguments do not, so patterns are matched here as well.
package pathexp

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/jmylchreest/nbclean/internal/logger"
)

// ErrNoFiles is returned when expansion produces no paths at all.
var ErrNoFiles = errors.New("no notebook files found")

// HasMeta reports whether arg should be treated as a pattern.
func HasMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?")
}

// Expand resolves args into paths. Arguments without wildcards are passed
// through untouched (even if they do not exist) so the caller can report
// them; patterns are replaced by their sorted matches. '*' and '?' stay
// within one path segment, '**' crosses directories.
func Expand(fsys afero.Fs, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !HasMeta(arg) {
			paths = append(paths, arg)
			continue
		}

		matches, err := Match(fsys, arg)
		if err != nil {
			return nil, err
		}
		logger.Debug("expanded pattern", "pattern", arg, "matches", len(matches))
		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	return paths, nil
}

// Match returns the sorted paths in fsys matching pattern.
func Match(fsys afero.Fs, pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))

	globs, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	root := literalPrefix(pattern)
	recursive := strings.Contains(pattern, "**")
	depth := strings.Count(pattern, "/")

	var matches []string
	err = afero.Walk(fsys, filepath.FromSlash(root), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable or missing directories simply produce no matches.
			return nil
		}
		rel := filepath.ToSlash(p)
		if rel == root {
			return nil
		}
		if matchAny(globs, rel) {
			matches = append(matches, p)
		}
		if info.IsDir() && !recursive && strings.Count(rel, "/") >= depth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// compile builds the matchers for pattern. A "**/" segment may also match
// zero directories, so a variant without it is compiled as well.
func compile(pattern string) ([]glob.Glob, error) {
	variants := []string{pattern}
	if strings.Contains(pattern, "**/") {
		variants = append(variants, strings.ReplaceAll(pattern, "**/", ""))
	}

	globs := make([]glob.Glob, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// literalPrefix returns the directory portion of pattern that precedes the
// first wildcard segment.
func literalPrefix(pattern string) string {
	segments := strings.Split(pattern, "/")
	i := 0
	for i < len(segments)-1 && !strings.ContainsAny(segments[i], "*?[{") {
		i++
	}

	prefix := strings.Join(segments[:i], "/")
	switch {
	case prefix == "" && strings.HasPrefix(pattern, "/"):
		return "/"
	case prefix == "":
		return "."
	default:
		return prefix
	}
}
