package cmd

import (
	"os"
	"path/filepath"

	"github.com/smira/flag"
	check "gopkg.in/check.v1"
)

type StringOrFileFlagSuite struct{}

var _ = check.Suite(&StringOrFileFlagSuite{})

func (s *StringOrFileFlagSuite) TestLiteral(c *check.C) {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	value := AddStringOrFileFlag(flags, "query", "", "query")

	c.Assert(value.Set("-name bash"), check.IsNil)
	c.Check(value.String(), check.Equals, "-name bash")
	c.Check(flags.Lookup("query").Value.Get(), check.Equals, "-name bash")
}

func (s *StringOrFileFlagSuite) TestFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "names")
	c.Assert(os.WriteFile(path, []byte("bash\nzsh\n"), 0644), check.IsNil)

	content, err := GetStringOrFileContent("@" + path)
	c.Check(err, check.IsNil)
	c.Check(content, check.Equals, "bash\nzsh\n")

	_, err = GetStringOrFileContent("@" + path + ".missing")
	c.Check(err, check.ErrorMatches, "open .*names.missing: no such file or directory")
}
