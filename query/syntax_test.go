package query

import (
	"strings"

	. "gopkg.in/check.v1"
)

type SyntaxSuite struct {
}

var _ = Suite(&SyntaxSuite{})

func tokens(s string) []string {
	return strings.Fields(s)
}

func pred(field string, cmp Comparator, value string) *Predicate {
	return &Predicate{Field: field, Comparator: cmp, Value: value}
}

func and(l, r Node) *Combinator { return &Combinator{Op: OpAnd, Left: l, Right: r} }
func or(l, r Node) *Combinator { return &Combinator{Op: OpOr, Left: l, Right: r} }
func xor(l, r Node) *Combinator { return &Combinator{Op: OpXor, Left: l, Right: r} }
func not(l Node) *Combinator { return &Combinator{Op: OpNot, Left: l} }

func (s *SyntaxSuite) TestEmpty(c *C) {
	q, err := Parse(nil)
	c.Check(err, IsNil)
	c.Check(q, IsNil)

	q, err = ParseString("   ")
	c.Check(err, IsNil)
	c.Check(q, IsNil)
}

func (s *SyntaxSuite) TestPredicates(c *C) {
	q, err := Parse(tokens("-name firefox"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("name", Default, "firefox"))

	q, err = Parse(tokens("-version -lt 100.0"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("version", Less, "100.0"))

	q, err = Parse(tokens("-version > 100.0"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("version", Less, "100.0"))

	q, err = Parse(tokens("-depends%.name =~ ^lib"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("depends%.name", Regexp, "^lib"))

	// value slot is taken verbatim
	q, err = Parse(tokens("-desc -and"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("desc", Default, "-and"))

	q, err = Parse(tokens("-name -eq -gc"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("name", Equal, "-gc"))

	// one leading dash is stripped only
	q, err = Parse(tokens("--name x"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("-name", Default, "x"))
}

func (s *SyntaxSuite) TestDefaultFields(c *C) {
	q, err := Parse(tokens("web"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, or(or(or(
		pred("name", Default, "web"),
		pred("desc", Default, "web")),
		pred("provides", Default, "web")),
		pred("group", Default, "web")))

	q, err = Parse(tokens("-ne web"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, or(pred("name", NotEqual, "web"), pred("desc", NotEqual, "web")))
}

func (s *SyntaxSuite) TestCombinators(c *C) {
	a, b, d := pred("name", Default, "a"), pred("name", Default, "b"), pred("name", Default, "d")

	q, err := Parse(tokens("-name a -name b"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(a, b))

	q, err = Parse(tokens("-name a -or -name b -xor -name d"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, xor(or(a, b), d))

	q, err = Parse(tokens("-name a | -name b & -name d"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(or(a, b), d))

	q, err = Parse(tokens("-name a -or -go -name b -and -name d -gc"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, or(a, and(b, d)))

	q, err = Parse(tokens("-not -name a -name b"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(not(a), b))

	q, err = Parse(tokens("! ( -name a ^ -name b ) -or -not -not -name d"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, or(not(xor(a, b)), not(not(d))))

	q, err = Parse(tokens("-name firefox -and -not -desc lang"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(pred("name", Default, "firefox"), not(pred("desc", Default, "lang"))))
}

func (s *SyntaxSuite) TestNestedGroups(c *C) {
	a, b := pred("name", Default, "a"), pred("name", Default, "b")

	q, err := Parse(tokens("( ( ( -name a ) ) ) -go -go -name b -gc -gc"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(a, b))

	q, err = Parse(tokens("( -name a ( -name b ) )"))
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(a, b))
}

func (s *SyntaxSuite) TestErrors(c *C) {
	for query, message := range map[string]string{
		"-name":                    `parsing failed at end of query: expecting value after -name`,
		"-name -eq":                `parsing failed at end of query: expecting value after -eq`,
		"-eq":                      `parsing failed at end of query: expecting value after -eq`,
		"-name a -and":             `parsing failed at end of query: expecting term after -and`,
		"-name a -and -or -name b": `parsing failed at "-or" \(token 4\): expecting term after -and`,
		"-name a | )":              `parsing failed at "\)" \(token 4\): expecting term after \|`,
		"-and -name a":             `parsing failed at "-and" \(token 1\): unexpected -and: expecting term`,
		"-name a )":                `parsing failed at "\)" \(token 3\): unexpected '\)': no group to close`,
		"( -name a":                `parsing failed at end of query: expecting '\)' to close group`,
		"( )":                      `parsing failed at "\)" \(token 2\): empty group`,
		"-not":                     `parsing failed at end of query: expecting term`,
		"-not )":                   `parsing failed at "\)" \(token 2\): unexpected \): expecting term`,
		"(":                        `parsing failed at end of query: expecting term`,
	} {
		q, err := Parse(tokens(query))
		c.Check(q, IsNil, Commentf("query %q", query))
		c.Check(err, ErrorMatches, message, Commentf("query %q", query))
		_, ok := err.(*ParseError)
		c.Check(ok, Equals, true)
	}
}

func (s *SyntaxSuite) TestSplit(c *C) {
	result, err := Split(`-desc "web browser" -and -not -name 'firefox-*'`)
	c.Assert(err, IsNil)
	c.Check(result, DeepEquals, []string{"-desc", "web browser", "-and", "-not", "-name", "firefox-*"})

	result, err = Split(`-name a | -name b & -version > 1.0`)
	c.Assert(err, IsNil)
	c.Check(result, DeepEquals, []string{"-name", "a", "|", "-name", "b", "&", "-version", ">", "1.0"})

	result, err = Split(`-size <= 100 -or -size >= 200`)
	c.Assert(err, IsNil)
	c.Check(result, DeepEquals, []string{"-size", "<=", "100", "-or", "-size", ">=", "200"})

	_, err = Split(`-name "unterminated`)
	c.Check(err, NotNil)
}

func (s *SyntaxSuite) TestSplitOperators(c *C) {
	for query, expected := range map[string][]string{
		`( a ) ( b )`:                 {"(", "a", ")", "(", "b", ")"},
		`a|b`:                         {"a", "|", "b"},
		`-name glibc|-name firefox`:   {"-name", "glibc", "|", "-name", "firefox"},
		`-name a&-name b`:             {"-name", "a", "&", "-name", "b"},
		`-version >=2.0 -size<100`:    {"-version", ">=", "2.0", "-size", "<", "100"},
		`-name -re fire(fox)`:         {"-name", "-re", "fire(fox)"},
		`-desc =~ ^(web|mail)`:        {"-desc", "=~", "^(web", "|", "mail)"},
		`-desc =~ '^(web|mail)'`:      {"-desc", "=~", "^(web|mail)"},
		`-desc "a|b (c)" -name x\|y`:  {"-desc", "a|b (c)", "-name", "x|y"},
		`-name 'it'\''s' -or ! -name`: {"-name", "it's", "-or", "!", "-name"},
	} {
		result, err := Split(query)
		c.Assert(err, IsNil, Commentf("query %q", query))
		c.Check(result, DeepEquals, expected, Commentf("query %q", query))
	}
}

func (s *SyntaxSuite) TestParseStringGroups(c *C) {
	a, b := pred("name", Default, "a"), pred("name", Default, "b")

	q, err := ParseString("( -name a | -name b ) & -not -name d")
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, and(or(a, b), not(pred("name", Default, "d"))))

	q, err = ParseString("-name a|-name b")
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, or(a, b))

	q, err = ParseString("-name -re fire(fox)")
	c.Assert(err, IsNil)
	c.Check(q, DeepEquals, pred("name", Regexp, "fire(fox)"))

	_, err = ParseString("( -name a")
	c.Check(err, FitsTypeOf, &ParseError{})
}

func (s *SyntaxSuite) TestString(c *C) {
	for _, query := range []string{
		"-name firefox",
		"web",
		"-name a -or -go -name b -and -name d -gc",
		"-not ( -name a -xor -desc b ) -isize < 100",
		"-depends%.name -eq glibc -or -desc =~ ^(web|mail)",
	} {
		q, err := Parse(tokens(query))
		c.Assert(err, IsNil)

		again, err := ParseString(q.String())
		c.Assert(err, IsNil, Commentf("serialized as %s", q))
		c.Check(again, DeepEquals, q, Commentf("query %q serialized as %s", query, q))
	}

	c.Check(pred("desc", Default, "web browser").String(), Equals, `-desc 'web browser'`)
	c.Check(pred("name", Equal, "it's").String(), Equals, `-name -eq 'it'\''s'`)
	c.Check(pred("name", Default, "").String(), Equals, `-name ''`)
	c.Check(not(and(pred("name", Default, "a"), pred("desc", Regexp, "b"))).String(), Equals,
		"-not -go -name a -and -desc -re b -gc")
}
