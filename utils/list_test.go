package utils

import (
	. "gopkg.in/check.v1"
)

type ListSuite struct {
}

var _ = Suite(&ListSuite{})

func (s *ListSuite) TestStringsIsSubset(c *C) {
	err := StringsIsSubset([]string{"core", "extra"}, []string{"core", "extra", "multilib"}, "unknown repository %s")
	c.Assert(err, IsNil)

	err = StringsIsSubset([]string{"extra", "testing"}, []string{"core", "extra"}, "unknown repository %s")
	c.Assert(err, ErrorMatches, "unknown repository testing")

	c.Check(StringsIsSubset(nil, nil, "%s"), IsNil)
}

func (s *ListSuite) TestStrSliceDeduplicate(c *C) {
	c.Check(StrSliceDeduplicate([]string{}), DeepEquals, []string{})
	c.Check(StrSliceDeduplicate([]string{"a"}), DeepEquals, []string{"a"})
	c.Check(StrSliceDeduplicate([]string{"b", "a", "b", "c", "a"}), DeepEquals, []string{"b", "a", "c"})
}

func (s *ListSuite) TestSplitList(c *C) {
	c.Check(SplitList(""), DeepEquals, []string{})
	c.Check(SplitList("core"), DeepEquals, []string{"core"})
	c.Check(SplitList("core, extra,,core"), DeepEquals, []string{"core", "extra"})
}
