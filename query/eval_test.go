package query

import (
	"sort"

	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/pacfind"

	. "gopkg.in/check.v1"
)

type EvalSuite struct {
	firefox, lang, chromium *alpm.Package
	registry                *alpm.Registry
	list                    *alpm.PackageList
	reporter                *pacfind.RecordingResultReporter
	evaluator               *Evaluator
}

var _ = Suite(&EvalSuite{})

func (s *EvalSuite) SetUpTest(c *C) {
	s.firefox = &alpm.Package{Repository: "extra", Name: "firefox", Version: "100.0", Description: "web browser",
		Depends: []string{"nss>=3.90", "gtk3"}, Size: 70000000}
	s.lang = &alpm.Package{Repository: "extra", Name: "firefox-lang", Version: "100.0", Description: "language pack",
		Depends: []string{"firefox"}, Groups: []string{"firefox-addons"}}
	s.chromium = &alpm.Package{Repository: "extra", Name: "chromium", Version: "95.0", Description: "web browser",
		Provides: []string{"browser=95.0"}, Size: 90000000}

	s.registry = alpm.NewRegistry()
	s.registry.Add(s.firefox, s.lang, s.chromium)
	s.list = s.registry.Packages()

	s.reporter = &pacfind.RecordingResultReporter{}
	s.evaluator = NewEvaluator(s.registry, s.reporter)
}

func (s *EvalSuite) run(c *C, query string) []string {
	node, err := ParseString(query)
	c.Assert(err, IsNil)
	return s.evaluator.Run(node, s.list).Strings()
}

func sorted(names []string) []string {
	result := append([]string(nil), names...)
	sort.Strings(result)
	return result
}

func (s *EvalSuite) TestScenarios(c *C) {
	c.Check(s.run(c, "-name -re firefox"), DeepEquals, []string{"firefox-100.0", "firefox-lang-100.0"})
	c.Check(s.run(c, "-name firefox -and -not -desc lang"), DeepEquals, []string{"firefox-100.0"})
	c.Check(s.run(c, "-depends.name -eq firefox"), DeepEquals, []string{"firefox-lang-100.0"})
	c.Check(s.run(c, "web"), DeepEquals, []string{"firefox-100.0", "chromium-95.0"})

	node, err := ParseString("-version -lt 100.0")
	c.Assert(err, IsNil)
	subset := alpm.NewPackageListFromSlice([]*alpm.Package{s.firefox, s.chromium})
	c.Check(s.evaluator.Run(node, subset).Strings(), DeepEquals, []string{"chromium-95.0"})
}

func (s *EvalSuite) TestEmptyQuery(c *C) {
	c.Check(s.evaluator.Run(nil, s.list).Len(), Equals, 3)
	c.Check(s.evaluator.Run(nil, alpm.NewPackageList()).Len(), Equals, 0)
}

func (s *EvalSuite) TestDefaultFields(c *C) {
	// group and provides are searched by plain values
	c.Check(s.run(c, "addons"), DeepEquals, []string{"firefox-lang-100.0"})
	c.Check(s.run(c, "^browser"), DeepEquals, []string{"chromium-95.0"})

	// comparator alone applies to name and desc
	c.Check(s.run(c, "-eq chromium"), DeepEquals, []string{"chromium-95.0"})
	c.Check(s.run(c, "-eq 'web browser'"), DeepEquals, []string{"firefox-100.0", "chromium-95.0"})
}

func (s *EvalSuite) TestNumeric(c *C) {
	c.Check(s.run(c, "-size -gt 80000000"), DeepEquals, []string{"chromium-95.0"})
	c.Check(s.run(c, "-size 0"), DeepEquals, []string{"firefox-lang-100.0"})
	c.Check(s.run(c, "-size -re ^7"), DeepEquals, []string{"firefox-100.0"})
}

func (s *EvalSuite) TestRelations(c *C) {
	c.Check(s.run(c, "-depends nss"), DeepEquals, []string{"firefox-100.0"})
	// specifier versions are not part of relation values
	c.Check(s.run(c, "-depends -eq nss"), DeepEquals, []string{"firefox-100.0"})
	c.Check(s.run(c, "-provides -eq browser"), DeepEquals, []string{"chromium-95.0"})
	c.Check(s.run(c, "-depends.version 100.0"), DeepEquals, []string{"firefox-lang-100.0"})
	// unresolved dependencies (nss, gtk3) are not followed
	c.Check(s.run(c, "-depends.name nss"), DeepEquals, []string{})
	c.Check(s.run(c, "-group firefox-addons"), DeepEquals, []string{"firefox-lang-100.0"})
}

func (s *EvalSuite) TestTransitive(c *C) {
	a := &alpm.Package{Repository: "local", Name: "a", Version: "1", Depends: []string{"b"}}
	b := &alpm.Package{Repository: "local", Name: "b", Version: "1", Depends: []string{"c"}}
	cc := &alpm.Package{Repository: "local", Name: "c", Version: "1", Depends: []string{"a"}, Licenses: []string{"GPL"}}
	d := &alpm.Package{Repository: "local", Name: "d", Version: "1"}

	registry := alpm.NewRegistry()
	registry.Add(a, b, cc, d)
	evaluator := NewEvaluator(registry, s.reporter)
	list := registry.Packages()

	node, err := ParseString("-depends%.license GPL")
	c.Assert(err, IsNil)
	c.Check(evaluator.Run(node, list).Strings(), DeepEquals, []string{"a-1", "b-1", "c-1"})

	// direct relation only reaches b from a
	node, err = ParseString("-depends.license GPL")
	c.Assert(err, IsNil)
	c.Check(evaluator.Run(node, list).Strings(), DeepEquals, []string{"b-1"})

	// cycle leads back to the origin
	c.Check(evaluator.related(a, FieldDepends, true), DeepEquals, []*alpm.Package{b, cc, a})
	c.Check(evaluator.related(d, FieldDepends, true), HasLen, 0)

	node, err = ParseString("-depends%.depends%.name d")
	c.Assert(err, IsNil)
	c.Check(evaluator.Run(node, list).Strings(), DeepEquals, []string{})
}

func (s *EvalSuite) TestProperties(c *C) {
	queries := []string{"firefox", "-desc browser", "-version -ge 100.0", "-name -re ^c", "-size 0"}

	for _, x := range queries {
		for _, y := range queries {
			// -not -not X == X
			c.Check(sorted(s.run(c, "-not -not "+x)), DeepEquals, sorted(s.run(c, x)))

			// X -and Y == Y -and X as sets
			c.Check(sorted(s.run(c, x+" -and "+y)), DeepEquals, sorted(s.run(c, y+" -and "+x)))

			// X -xor Y excludes everything matched by X
			matched := map[string]bool{}
			for _, name := range s.run(c, x) {
				matched[name] = true
			}
			for _, name := range s.run(c, x+" -xor "+y) {
				c.Check(matched[name], Equals, false, Commentf("%s -xor %s", x, y))
			}

			// X -xor Y is exactly Y over what X left out
			left, err := ParseString(x)
			c.Assert(err, IsNil)
			right, err := ParseString(y)
			c.Assert(err, IsNil)
			rest := s.list.Difference(s.evaluator.Run(left, s.list))
			c.Check(sorted(s.run(c, x+" -xor "+y)), DeepEquals, sorted(s.evaluator.Run(right, rest).Strings()),
				Commentf("%s -xor %s", x, y))

			// X -or X has no duplicates
			c.Check(s.run(c, x+" -or "+x), DeepEquals, s.run(c, x))

			// complement partitions the input
			c.Check(len(s.run(c, x))+len(s.run(c, "-not "+x)), Equals, s.list.Len())
		}
	}
}

func (s *EvalSuite) TestOrKeepsDuplicatesUntilRun(c *C) {
	node, err := ParseString("firefox -or -name firefox")
	c.Assert(err, IsNil)
	// name, group and then name again
	c.Check(s.evaluator.Eval(node, s.list).Len(), Equals, 5)
	c.Check(s.evaluator.Run(node, s.list).Len(), Equals, 2)
}

func (s *EvalSuite) TestFailedPredicates(c *C) {
	c.Check(s.run(c, "-nope firefox"), DeepEquals, []string{})
	c.Check(s.run(c, "-nope firefox -or -nope chromium"), DeepEquals, []string{})
	c.Check(s.run(c, "-not -nope x"), HasLen, 3)
	c.Check(s.run(c, "-name 'fire('"), DeepEquals, []string{})
	c.Check(s.run(c, "-license.name x"), DeepEquals, []string{})

	c.Check(s.reporter.Warnings, DeepEquals, []string{
		`unable to resolve field nope: unknown field "nope"`,
		`invalid regular expression "fire(": error parsing regexp: missing closing ): ` + "`(?im)fire(`",
		`unable to resolve field license.name: license is not a selector`,
	})
}

func (s *EvalSuite) TestLogsWithoutReporter(c *C) {
	evaluator := NewEvaluator(s.registry, nil)
	node, err := ParseString("-nope x -or firefox")
	c.Assert(err, IsNil)
	c.Check(evaluator.Run(node, s.list).Len(), Equals, 2)
}
