package collect

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// CollectFileTree lists the immediate children of dir, directories first,
// each group sorted case-insensitively by name. Dot-entries are excluded
// unless showHidden is set; generated/dependency directories are excluded
// unconditionally.
func CollectFileTree(tabID int, dir string, showHidden bool) snapshot.FileTreeSnapshot {
	started := time.Now()
	var dirs, files []snapshot.FileTreeEntry

	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if !showHidden && strings.HasPrefix(name, ".") {
				continue
			}
			if name == "node_modules" || name == "target" {
				continue
			}
			item := snapshot.FileTreeEntry{
				Name:  name,
				Path:  filepath.Join(dir, name),
				IsDir: entry.IsDir(),
			}
			if item.IsDir {
				dirs = append(dirs, item)
			} else {
				files = append(files, item)
			}
		}
	}

	byName := func(entries []snapshot.FileTreeEntry) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		}
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	snap := snapshot.FileTreeSnapshot{
		TabID:      tabID,
		CurrentDir: dir,
		Entries:    append(dirs, files...),
	}

	log.WithFields(logrus.Fields{
		"tab":     tabID,
		"dir":     dir,
		"entries": len(snap.Entries),
		"hidden":  showHidden,
		"took_ms": time.Since(started).Milliseconds(),
	}).Debug("file tree collected")

	return snap
}
