package persist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/ue4ss-tools/modswitch"
)

// TxtName is the line-oriented aggregate document. Each enabled mod gets
// a "Name : 1" line, the format the UE4SS loader parses.
const TxtName = "mods.txt"

// WriteTxt replaces mods.txt with one line per enabled mod, in snapshot
// order for stable diffs.
func WriteTxt(fsys billy.Filesystem, root string, snapshot []modswitch.Mod) error {
	var buf bytes.Buffer
	for _, m := range snapshot {
		if !m.Enabled {
			continue
		}
		fmt.Fprintf(&buf, "%s : 1\n", m.Name)
	}
	return writeFileAtomic(fsys, root, TxtName, buf.Bytes())
}

// ReadTxt returns the name to enabled mapping from mods.txt. Blank lines
// are skipped, "Name : 0" reads as disabled and a bare name without a
// flag reads as enabled. A missing file yields an empty map. Names that
// no longer exist on disk are the caller's business.
func ReadTxt(fsys billy.Filesystem, root string) (map[string]bool, error) {
	f, err := fsys.Open(fsys.Join(root, TxtName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Debug("close", "file", TxtName, "err", cerr)
		}
	}()

	state := map[string]bool{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		name, flag := line, "1"
		if i := strings.LastIndex(line, ":"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			flag = strings.TrimSpace(line[i+1:])
		}
		if name == "" {
			continue
		}
		state[name] = flag != "0"
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return state, nil
}
