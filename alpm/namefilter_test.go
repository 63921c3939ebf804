package alpm

import (
	"strings"

	. "gopkg.in/check.v1"
)

type NameFilterSuite struct{}

var _ = Suite(&NameFilterSuite{})

func (s *NameFilterSuite) TestApply(c *C) {
	coreBash := testPackage("core", "bash", "5.2-1")
	localBash := testPackage(LocalRepository, "bash", "5.2-1")
	vim := testPackage("extra", "vim", "9.1-1")
	localVim := testPackage(LocalRepository, "vim", "9.0-1")

	filter, err := ParseNameFilter(strings.NewReader("bash\n\n  local/vim \nextra/nope\n"))
	c.Assert(err, IsNil)
	c.Check(filter.Len(), Equals, 3)

	list := NewPackageListFromSlice([]*Package{coreBash, vim, localBash, localVim})
	c.Check(filter.Apply(list).Packages(), DeepEquals, []*Package{coreBash, localBash, localVim})
}

func (s *NameFilterSuite) TestEmpty(c *C) {
	filter := NewNameFilter([]string{"", "  "})
	c.Check(filter.Len(), Equals, 0)
	c.Check(filter.Apply(NewPackageListFromSlice([]*Package{testPackage("core", "a", "1")})).Len(), Equals, 0)
}
