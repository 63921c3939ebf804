package alpm

import (
	"io"
	"path"
	"path/filepath"

	"github.com/pacfind/pacfind/pacfind"
	"github.com/pkg/errors"
)

// SyncDBPath returns path to sync database file of the repository
func SyncDBPath(dbPath, repo string) string {
	return filepath.Join(dbPath, "sync", repo+".db")
}

// LoadSyncDB loads packages from sync database file of the repository
//
// Sync database is a (compressed) tar archive with a directory per package,
// containing "desc" and, in older formats, "depends". Package order follows
// the archive.
func LoadSyncDB(repo, dbFile string, reporter pacfind.ResultReporter) (*PackageList, error) {
	stanzas := map[string]Stanza{}
	order := []string{}

	err := ForEachTarEntry(dbFile, func(name string, r io.Reader) error {
		dir, base := path.Split(path.Clean(name))
		if base != "desc" && base != "depends" {
			return nil
		}

		stanza, err := ReadDesc(r)
		if err != nil {
			reporter.Warning("Unable to parse %s in %s: %s", name, dbFile, err)
			return nil
		}

		existing, ok := stanzas[dir]
		if !ok {
			stanzas[dir] = stanza
			order = append(order, dir)
		} else {
			existing.Merge(stanza)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrapf(err, "unable to load sync database %s", repo)
	}

	result := NewPackageList()
	for _, dir := range order {
		p := NewPackageFromDesc(stanzas[dir], repo)
		if p.Name == "" {
			reporter.Warning("Empty package name in %s of %s", dir, dbFile)
			continue
		}
		result.Add(p)
	}

	return result, nil
}
