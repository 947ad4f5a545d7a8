// Package pkgjson merges declarative dependency deltas into a package.json.
package pkgjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velocity-kit/velocity-cli/internal/fsutil"
	"github.com/velocity-kit/velocity-cli/internal/manifest"
	"github.com/velocity-kit/velocity-cli/internal/messages"
)

// FileName is the package descriptor at the project root.
const FileName = "package.json"

// Descriptor is a loaded package.json. Top-level fields other than the two
// dependency sections are carried through untouched.
type Descriptor struct {
	path    string
	doc     map[string]json.RawMessage
	deps    map[string]string
	devDeps map[string]string
}

// Load reads the package descriptor under root. The found flag is false when
// no descriptor exists; merging is then a silent no-op by contract.
func Load(root string) (*Descriptor, bool, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf(messages.PkgParseErrFmt, path, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf(messages.PkgParseErrFmt, path, err)
	}
	d := &Descriptor{path: path, doc: doc}
	if d.deps, err = section(doc, "dependencies"); err != nil {
		return nil, false, fmt.Errorf(messages.PkgParseErrFmt, path, err)
	}
	if d.devDeps, err = section(doc, "devDependencies"); err != nil {
		return nil, false, fmt.Errorf(messages.PkgParseErrFmt, path, err)
	}
	return d, true, nil
}

func section(doc map[string]json.RawMessage, key string) (map[string]string, error) {
	raw, ok := doc[key]
	if !ok {
		return map[string]string{}, nil
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("field %s: %w", key, err)
	}
	if out == nil {
		out = map[string]string{}
	}
	return out, nil
}

// Dependencies returns a copy of the dependencies section.
func (d *Descriptor) Dependencies() map[string]string {
	return copyMap(d.deps)
}

// DevDependencies returns a copy of the devDependencies section.
func (d *Descriptor) DevDependencies() map[string]string {
	return copyMap(d.devDeps)
}

func copyMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Apply mutates the descriptor per the manifest delta.
//
// Updates land in whichever section already declares the package, falling
// back to dependencies; removals delete from both sections; additions insert
// into dependencies unconditionally, last write wins. The order (update,
// remove, add) matches the manifest contract and makes Apply idempotent.
func (d *Descriptor) Apply(delta manifest.Dependencies) {
	for name, ver := range delta.Update {
		if _, ok := d.devDeps[name]; ok {
			d.devDeps[name] = ver
			continue
		}
		d.deps[name] = ver
	}
	for _, name := range delta.Remove {
		delete(d.deps, name)
		delete(d.devDeps, name)
	}
	for name, ver := range delta.Add {
		d.deps[name] = ver
	}
}

// Save rewrites the descriptor with 2-space indentation and a trailing
// newline. Dependency sections are written back only when they existed before
// or now carry entries.
func (d *Descriptor) Save() error {
	if err := d.storeSection("dependencies", d.deps); err != nil {
		return fmt.Errorf(messages.PkgWriteErrFmt, d.path, err)
	}
	if err := d.storeSection("devDependencies", d.devDeps); err != nil {
		return fmt.Errorf(messages.PkgWriteErrFmt, d.path, err)
	}
	data, err := json.MarshalIndent(d.doc, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.PkgWriteErrFmt, d.path, err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFileAtomic(d.path, data, 0o644); err != nil {
		return fmt.Errorf(messages.PkgWriteErrFmt, d.path, err)
	}
	return nil
}

func (d *Descriptor) storeSection(key string, values map[string]string) error {
	_, existed := d.doc[key]
	if !existed && len(values) == 0 {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	d.doc[key] = raw
	return nil
}

// Merge loads the descriptor under root, applies the delta, and rewrites it.
// A missing descriptor is a silent no-op.
func Merge(root string, delta manifest.Dependencies) error {
	d, found, err := Load(root)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	d.Apply(delta)
	return d.Save()
}
