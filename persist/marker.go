package persist

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
)

// MarkerName is the per-mod marker file. Its presence alone means the
// mod is enabled; content, if any, is ignored.
const MarkerName = "enabled.txt"

// WriteMarker creates the marker inside modPath when enabling and
// removes it when disabling. Both directions are idempotent.
func WriteMarker(fsys billy.Filesystem, modPath string, enabled bool) error {
	p := fsys.Join(modPath, MarkerName)
	if enabled {
		if _, err := fsys.Stat(p); err == nil {
			return nil
		}
		f, err := fsys.Create(p)
		if err != nil {
			return err
		}
		return f.Close()
	}
	err := fsys.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ReadMarker reports whether the marker is present. Absence is not a
// definitive "disabled": a mod enabled only through an aggregate file
// has no marker.
func ReadMarker(fsys billy.Filesystem, modPath string) bool {
	_, err := fsys.Stat(fsys.Join(modPath, MarkerName))
	return err == nil
}
