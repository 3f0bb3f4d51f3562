package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"vox/internal/fileutil"
	"vox/internal/item"
)

// Entry is the full metadata for one item type
type Entry struct {
	Type       item.Type
	Name       string
	AssetPath  string
	Radius     float32
	Procedural bool
}

// Report is the result of checking item definitions against a content root
type Report struct {
	Root    string
	Checked int
	Missing []Entry
}

// OK reports whether every checked definition file was found
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Entries returns one entry per item type in declaration order
func Entries() []Entry {
	all := item.All()
	out := make([]Entry, 0, len(all))
	for _, t := range all {
		out = append(out, Lookup(t))
	}
	return out
}

// Lookup builds the entry for a single type
func Lookup(t item.Type) Entry {
	return Entry{
		Type:       t,
		Name:       item.NameOf(t),
		AssetPath:  item.AssetPathOf(t),
		Radius:     item.RadiusOf(t),
		Procedural: t.Procedural(),
	}
}

// Verify checks that every non-procedural item has its definition file under
// root. A missing directory counts as missing files, not as an error.
func Verify(root string) (Report, error) {
	rep := Report{Root: root}
	listings := make(map[string]map[string]bool)

	for _, e := range Entries() {
		if e.Procedural {
			continue
		}
		rep.Checked++

		full := filepath.Join(root, filepath.FromSlash(e.AssetPath))
		dir := filepath.Dir(full)
		present, ok := listings[dir]
		if !ok {
			names, err := fileutil.ListFilesWithExt(dir, filepath.Ext(full))
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return rep, fmt.Errorf("verify %s: %w", e.Name, err)
			}
			present = make(map[string]bool, len(names))
			for _, n := range names {
				present[n] = true
			}
			listings[dir] = present
		}

		if !present[filepath.Base(full)] {
			rep.Missing = append(rep.Missing, e)
		}
	}
	return rep, nil
}
