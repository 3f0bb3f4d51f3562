package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListFiles returns the names of the entries in a directory.
//
// The argument is either a plain directory or a directory followed by a glob
// element, e.g. "media/gamedata/items/*.*". When the last element contains
// glob metacharacters only matching names are returned. Names are sorted and
// never include "." or "..".
func ListFiles(pattern string) ([]string, error) {
	dir, match := splitPattern(pattern)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if match != "" {
			ok, err := filepath.Match(match, name)
			if err != nil {
				return nil, fmt.Errorf("list %s: bad pattern %q: %w", dir, match, err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ListFilesWithExt returns the entries of dir whose extension is ext (".item").
func ListFilesWithExt(dir, ext string) ([]string, error) {
	return ListFiles(filepath.Join(dir, "*"+ext))
}

func splitPattern(pattern string) (dir, match string) {
	if pattern == "" {
		return ".", ""
	}
	clean := filepath.Clean(pattern)
	base := filepath.Base(clean)
	if !strings.ContainsAny(base, "*?[") {
		return clean, ""
	}
	return filepath.Dir(clean), base
}
