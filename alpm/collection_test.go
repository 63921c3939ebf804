package alpm

import (
	"github.com/pacfind/pacfind/database"
	"github.com/pacfind/pacfind/database/goleveldb"

	. "gopkg.in/check.v1"
)

// scanCountingStorage counts full prefix scans
type scanCountingStorage struct {
	database.Storage
	scans int
}

func (s *scanCountingStorage) KeysByPrefix(prefix []byte) [][]byte {
	s.scans++
	return s.Storage.KeysByPrefix(prefix)
}

type PackageCollectionSuite struct {
	db         database.Storage
	collection *PackageCollection
	list       *PackageList
}

var _ = Suite(&PackageCollectionSuite{})

func (s *PackageCollectionSuite) SetUpTest(c *C) {
	var err error
	s.db, err = goleveldb.NewOpenDB(c.MkDir())
	c.Assert(err, IsNil)

	s.collection = NewPackageCollection(s.db)

	p := testPackage("core", "bash", "5.2.015-5")
	p.Provides = []string{"sh"}
	p.InstalledSize = 9000
	p.RequiredBy = []string{"never-stored"}
	s.list = NewPackageListFromSlice([]*Package{p, testPackage("core", "glibc", "2.38-7")})
}

func (s *PackageCollectionSuite) TearDownTest(c *C) {
	c.Assert(s.db.Close(), IsNil)
}

func (s *PackageCollectionSuite) TestUpdateGet(c *C) {
	_, err := s.collection.Get("core", "aaa")
	c.Check(err, Equals, database.ErrNotFound)

	c.Assert(s.collection.Update("core", "aaa", s.list), IsNil)

	list, err := s.collection.Get("core", "aaa")
	c.Assert(err, IsNil)
	c.Check(list.Strings(), DeepEquals, []string{"bash-5.2.015-5", "glibc-2.38-7"})

	bash := list.Packages()[0]
	c.Check(bash.Repository, Equals, "core")
	c.Check(bash.Provides, DeepEquals, []string{"sh"})
	c.Check(bash.InstalledSize, Equals, int64(9000))
	c.Check(bash.RequiredBy, IsNil)
}

func (s *PackageCollectionSuite) TestUpdateDropsStale(c *C) {
	c.Assert(s.collection.Update("core", "aaa", s.list), IsNil)
	c.Assert(s.collection.Update("core", "bbb", s.list), IsNil)

	_, err := s.collection.Get("core", "aaa")
	c.Check(err, Equals, database.ErrNotFound)

	_, err = s.collection.Get("core", "bbb")
	c.Check(err, IsNil)
}

func (s *PackageCollectionSuite) TestCleanup(c *C) {
	c.Assert(s.collection.Update("core", "aaa", s.list), IsNil)
	c.Assert(s.collection.Update("extra", "bbb", s.list), IsNil)
	c.Assert(s.collection.Update("community", "ccc", s.list), IsNil)

	c.Check(s.collection.Repos(), DeepEquals, []string{"community", "core", "extra"})

	removed, err := s.collection.Cleanup([]string{"core", "extra"})
	c.Assert(err, IsNil)
	c.Check(removed, Equals, 1)
	c.Check(s.collection.Repos(), DeepEquals, []string{"core", "extra"})

	removed, err = s.collection.Cleanup(nil)
	c.Assert(err, IsNil)
	c.Check(removed, Equals, 2)
	c.Check(s.collection.Repos(), DeepEquals, []string{})
}

func (s *PackageCollectionSuite) TestEmptyCacheSkipsScans(c *C) {
	storage := &scanCountingStorage{Storage: s.db}
	collection := NewPackageCollection(storage)

	c.Check(collection.Repos(), DeepEquals, []string{})
	c.Assert(collection.Update("core", "aaa", s.list), IsNil)
	c.Check(storage.scans, Equals, 0)

	c.Assert(collection.Update("extra", "bbb", s.list), IsNil)
	c.Check(storage.scans, Equals, 0)

	c.Assert(collection.Update("core", "ccc", s.list), IsNil)
	c.Check(storage.scans, Equals, 1)

	c.Check(collection.Repos(), DeepEquals, []string{"core", "extra"})
	c.Check(storage.scans, Equals, 2)
}
