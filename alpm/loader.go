package alpm

import (
	"os"

	"github.com/pacfind/pacfind/database"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/utils"
	"github.com/rs/zerolog/log"
)

// LoadOptions controls which sources are loaded into Registry
type LoadOptions struct {
	// DBPath is pacman database directory
	DBPath string
	// Sync loads sync repositories from SyncRepos
	Sync      bool
	SyncRepos []string
	// Local loads installed packages
	Local bool
	// Files are package archives to load
	Files []string
	// Collection caches parsed sync databases, nil disables cache
	Collection *PackageCollection
}

// LoadRegistry builds registry from sources enabled in options
//
// Missing or broken sources are reported as warnings, registry is built from
// whatever could be loaded.
func LoadRegistry(options LoadOptions, progress pacfind.Progress, reporter pacfind.ResultReporter) (*Registry, error) {
	registry := NewRegistry()

	if options.Sync {
		if progress != nil {
			progress.InitBar(int64(len(options.SyncRepos)), false, pacfind.BarLoadSyncDatabase)
		}

		for _, repo := range options.SyncRepos {
			list, err := loadSyncRepo(options, repo, reporter)
			if progress != nil {
				progress.AddBar(1)
			}
			if err != nil {
				reporter.Warning("Unable to load repository %s: %s", repo, err)
				continue
			}
			registry.AddList(list)
		}

		if progress != nil {
			progress.ShutdownBar()
		}
	}

	if options.Local {
		list, err := LoadLocalDB(options.DBPath, reporter)
		if err != nil {
			return nil, err
		}
		registry.AddList(list)
	}

	if len(options.Files) > 0 {
		if progress != nil {
			progress.InitBar(int64(len(options.Files)), false, pacfind.BarLoadPackageFiles)
		}

		for _, file := range options.Files {
			p, err := LoadPackageFile(file)
			if progress != nil {
				progress.AddBar(1)
			}
			if err != nil {
				reporter.Warning("%s", err)
				continue
			}
			registry.Add(p)
		}

		if progress != nil {
			progress.ShutdownBar()
		}
	}

	registry.ComputeRequiredBy()

	return registry, nil
}

func loadSyncRepo(options LoadOptions, repo string, reporter pacfind.ResultReporter) (*PackageList, error) {
	dbFile := SyncDBPath(options.DBPath, repo)

	if _, err := os.Stat(dbFile); err != nil {
		return nil, err
	}

	if options.Collection == nil {
		return LoadSyncDB(repo, dbFile, reporter)
	}

	checksums, err := utils.ChecksumsForFile(dbFile)
	if err != nil {
		return nil, err
	}

	list, err := options.Collection.Get(repo, checksums.SHA256)
	if err == nil {
		log.Debug().Str("repo", repo).Int("packages", list.Len()).Msg("loaded sync database from cache")
		return list, nil
	}
	if err != database.ErrNotFound {
		log.Warn().Err(err).Str("repo", repo).Msg("ignoring broken cache entry")
	}

	list, err = LoadSyncDB(repo, dbFile, reporter)
	if err != nil {
		return nil, err
	}

	if err = options.Collection.Update(repo, checksums.SHA256, list); err != nil {
		log.Warn().Err(err).Str("repo", repo).Msg("unable to update cache")
	}

	return list, nil
}
