// Package persist reads and writes the three on-disk representations of
// mod enablement: per-mod enabled.txt markers, mods.json and mods.txt.
package persist

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/ue4ss-tools/modswitch"
)

// Options selects which representations a save writes. Any combination
// is valid; the zero value writes nothing.
type Options struct {
	Markers bool
	JSON    bool
	Text    bool
}

// Failure records one file that could not be written during a save. Mod
// is empty for aggregate files.
type Failure struct {
	Mod  string
	Path string
	Err  error
}

func (f Failure) String() string {
	if f.Mod != "" {
		return fmt.Sprintf("mod %s: %s: %v", f.Mod, f.Path, f.Err)
	}
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// Report is the aggregated outcome of a save across all active
// serializers.
type Report struct {
	Failures []Failure
}

func (r Report) OK() bool { return len(r.Failures) == 0 }

// Save fans the snapshot out to every representation selected in opts.
// Each write runs independently: a mod folder that refuses its marker
// does not abort the remaining markers or the aggregate files, and
// there is no rollback across representations. On a partial failure the
// representations may disagree until the next save; load precedence
// arbitrates in the meantime.
func Save(fsys billy.Filesystem, root string, snapshot []modswitch.Mod, opts Options) Report {
	var rep Report
	if opts.Markers {
		for _, m := range snapshot {
			if err := WriteMarker(fsys, m.Path, m.Enabled); err != nil {
				rep.Failures = append(rep.Failures, Failure{
					Mod:  m.Name,
					Path: fsys.Join(m.Path, MarkerName),
					Err:  err,
				})
			}
		}
	}
	if opts.JSON {
		if err := WriteJSON(fsys, root, snapshot); err != nil {
			rep.Failures = append(rep.Failures, Failure{
				Path: fsys.Join(root, JSONName),
				Err:  err,
			})
		}
	}
	if opts.Text {
		if err := WriteTxt(fsys, root, snapshot); err != nil {
			rep.Failures = append(rep.Failures, Failure{
				Path: fsys.Join(root, TxtName),
				Err:  err,
			})
		}
	}
	return rep
}
