package persist

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// writeFileAtomic replaces dir/name by writing to a temp file in the
// same directory and renaming it over the target, so an interrupted
// save never leaves a truncated aggregate behind.
func writeFileAtomic(fsys billy.Filesystem, dir, name string, data []byte) (err error) {
	f, err := util.TempFile(fsys, dir, name+"-")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return fsys.Rename(tmp, fsys.Join(dir, name))
}
