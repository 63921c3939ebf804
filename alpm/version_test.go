package alpm

import (
	. "gopkg.in/check.v1"
)

type VersionSuite struct{}

var _ = Suite(&VersionSuite{})

func (s *VersionSuite) TestParseVersion(c *C) {
	e, v, r := parseVersion("1.3.4")
	c.Check([]string{e, v, r}, DeepEquals, []string{"0", "1.3.4", ""})

	e, v, r = parseVersion("4:1.3.4-2")
	c.Check([]string{e, v, r}, DeepEquals, []string{"4", "1.3.4", "2"})

	e, v, r = parseVersion("1.3-pre4-1")
	c.Check([]string{e, v, r}, DeepEquals, []string{"0", "1.3-pre4", "1"})

	e, v, r = parseVersion("a:1.0")
	c.Check([]string{e, v, r}, DeepEquals, []string{"0", "a:1.0", ""})
}

func (s *VersionSuite) TestCompareVersionPart(c *C) {
	c.Check(compareVersionPart("", ""), Equals, 0)
	c.Check(compareVersionPart("1.5.0", "1.5.0"), Equals, 0)
	c.Check(compareVersionPart("1.001", "1.1"), Equals, 0)

	c.Check(compareVersionPart("1.5.1", "1.5.0"), Equals, 1)
	c.Check(compareVersionPart("1.5.0", "1.5.1"), Equals, -1)
	c.Check(compareVersionPart("1.5.1", "1.5"), Equals, 1)
	c.Check(compareVersionPart("1.10", "1.9"), Equals, 1)

	c.Check(compareVersionPart("1.5a", "1.5"), Equals, -1)
	c.Check(compareVersionPart("1.5.b", "1.5"), Equals, -1)
	c.Check(compareVersionPart("1.0", "1.a"), Equals, 1)
	c.Check(compareVersionPart("1.a", "1.0"), Equals, -1)
	c.Check(compareVersionPart("1.0alpha", "1.0beta"), Equals, -1)
}

func (s *VersionSuite) TestVersionCompare(c *C) {
	c.Check(VersionCompare("1.5.0-1", "1.5.0-1"), Equals, 0)
	c.Check(VersionCompare("1.5.0-1", "1.5.0-2"), Equals, -1)
	c.Check(VersionCompare("1.5.0-2", "1.5.1-1"), Equals, -1)
	c.Check(VersionCompare("1.5-1", "1.5"), Equals, 0)

	c.Check(VersionCompare("1:1.0", "2.0"), Equals, 1)
	c.Check(VersionCompare("0:1.0", "1.0"), Equals, 0)
	c.Check(VersionCompare("1:1.0-1", "1:1.1-1"), Equals, -1)

	c.Check(VersionCompare("120.0-1", "119.0.1-1"), Equals, 1)
	c.Check(VersionCompare("119.0.1-1", "120.0-1"), Equals, -1)
}
