package alpm

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pacfind/pacfind/pacfind"
	"github.com/pkg/errors"
	"github.com/saracen/walker"
)

// LoadLocalDB loads installed packages from <dbpath>/local
//
// Each package lives in its own directory with "desc" file (and "depends"
// file for databases created by ancient pacman versions). Unreadable
// entries are reported and skipped. Result is sorted by package name.
func LoadLocalDB(dbPath string, reporter pacfind.ResultReporter) (*PackageList, error) {
	localPath := filepath.Join(dbPath, "local")

	if _, err := os.Stat(localPath); err != nil {
		return nil, errors.Wrapf(err, "unable to open local database")
	}

	var (
		lock     sync.Mutex
		packages []*Package
	)

	err := walker.Walk(localPath, func(path string, info os.FileInfo) error {
		if info.IsDir() || info.Name() != "desc" {
			return nil
		}

		// only <dbpath>/local/<pkg>/desc
		if filepath.Dir(filepath.Dir(path)) != localPath {
			return nil
		}

		stanza, err := readDescFile(path)
		if err != nil {
			reporter.Warning("Unable to read %s: %s", path, err)
			return nil
		}

		depends := filepath.Join(filepath.Dir(path), "depends")
		if _, err = os.Stat(depends); err == nil {
			extra, err := readDescFile(depends)
			if err != nil {
				reporter.Warning("Unable to read %s: %s", depends, err)
			} else {
				stanza.Merge(extra)
			}
		}

		p := NewPackageFromDesc(stanza, LocalRepository)
		if p.Name == "" {
			reporter.Warning("Empty package name in %s", path)
			return nil
		}

		lock.Lock()
		defer lock.Unlock()
		packages = append(packages, p)

		return nil
	})

	if err != nil {
		return nil, errors.Wrapf(err, "unable to walk local database")
	}

	sort.Slice(packages, func(i, j int) bool {
		if packages[i].Name == packages[j].Name {
			return packages[i].Version < packages[j].Version
		}
		return packages[i].Name < packages[j].Name
	})

	return NewPackageListFromSlice(packages), nil
}

func readDescFile(path string) (Stanza, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadDesc(file)
}
