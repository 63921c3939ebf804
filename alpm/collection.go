package alpm

import (
	"bytes"
	"fmt"

	"github.com/pacfind/pacfind/database"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// PackageCollection caches parsed sync databases in DB
//
// Key is "S" + repo + 0x00 + SHA256 of database file, so replacing the
// database file (pacman -Sy) invalidates the cached entry. Value is
// msgpack-encoded list of packages.
type PackageCollection struct {
	db           database.Storage
	encodeBuffer bytes.Buffer
}

// NewPackageCollection creates new PackageCollection and binds it to database
func NewPackageCollection(db database.Storage) *PackageCollection {
	return &PackageCollection{
		db: db,
	}
}

func collectionKey(repo, checksum string) []byte {
	return []byte("S" + repo + "\x00" + checksum)
}

func collectionPrefix(repo string) []byte {
	return []byte("S" + repo + "\x00")
}

// Get loads cached package list of the repository, if present
func (collection *PackageCollection) Get(repo, checksum string) (*PackageList, error) {
	encoded, err := collection.db.Get(collectionKey(repo, checksum))
	if err != nil {
		return nil, err
	}

	var packages []*Package

	decoder := codec.NewDecoderBytes(encoded, &codec.MsgpackHandle{})
	err = decoder.Decode(&packages)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode cached repository %s", repo)
	}

	for _, p := range packages {
		p.Repository = repo
	}

	return NewPackageListFromSlice(packages), nil
}

// Update stores package list of the repository, dropping stale versions
func (collection *PackageCollection) Update(repo, checksum string, list *PackageList) error {
	collection.encodeBuffer.Reset()
	encoder := codec.NewEncoder(&collection.encodeBuffer, &codec.MsgpackHandle{})
	err := encoder.Encode(list.packages)
	if err != nil {
		return errors.Wrapf(err, "unable to encode repository %s", repo)
	}

	key := collectionKey(repo, checksum)
	prefix := collectionPrefix(repo)

	batch := collection.db.CreateBatch()
	if collection.db.HasPrefix(prefix) {
		for _, stale := range collection.db.KeysByPrefix(prefix) {
			if !bytes.Equal(stale, key) {
				err = batch.Delete(stale)
				if err != nil {
					return err
				}
			}
		}
	}

	err = batch.Put(key, collection.encodeBuffer.Bytes())
	if err != nil {
		return err
	}

	return batch.Write()
}

// Repos lists repositories with cached entries
func (collection *PackageCollection) Repos() []string {
	result := []string{}
	if !collection.db.HasPrefix([]byte("S")) {
		return result
	}

	for _, key := range collection.db.KeysByPrefix([]byte("S")) {
		i := bytes.IndexByte(key, 0)
		if i == -1 {
			continue
		}
		repo := string(key[1:i])
		if len(result) == 0 || result[len(result)-1] != repo {
			result = append(result, repo)
		}
	}
	return result
}

// Cleanup removes cached entries of repositories not in the active list
//
// Returns number of removed entries.
func (collection *PackageCollection) Cleanup(activeRepos []string) (int, error) {
	active := make(map[string]struct{}, len(activeRepos))
	for _, repo := range activeRepos {
		active[repo] = struct{}{}
	}

	removed := 0
	batch := collection.db.CreateBatch()

	for _, repo := range collection.Repos() {
		if _, ok := active[repo]; ok {
			continue
		}

		for _, key := range collection.db.KeysByPrefix(collectionPrefix(repo)) {
			if err := batch.Delete(key); err != nil {
				return 0, err
			}
			removed++
		}
	}

	if err := batch.Write(); err != nil {
		return 0, fmt.Errorf("unable to cleanup cache: %s", err)
	}

	return removed, nil
}
