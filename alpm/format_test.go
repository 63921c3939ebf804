package alpm

import (
	"bytes"
	"strings"

	. "gopkg.in/check.v1"
)

type FormatSuite struct{}

var _ = Suite(&FormatSuite{})

const descFile = `%FILENAME%
firefox-120.0-1-x86_64.pkg.tar.zst

%NAME%
firefox

%VERSION%
120.0-1

%DESC%
Standalone web browser from mozilla.org

%CSIZE%
68542337

%ISIZE%
254876733

%LICENSE%
MPL-2.0

%DEPENDS%
dbus-glib
ffmpeg
gtk3
libpulse
nss>=3.94

%OPTDEPENDS%
networkmanager: Location detection via available WiFi networks
speech-dispatcher: Text-to-Speech

%PROVIDES%

`

const pkgInfoFile = `# Generated by makepkg 6.0.2
# using fakeroot version 1.32.1
pkgname = firefox
pkgbase = firefox
pkgver = 120.0-1
pkgdesc = Standalone web browser from mozilla.org
url = https://www.mozilla.org/firefox/
builddate = 1700767740
packager = Jan Alexander Steffens (heftig) <heftig@archlinux.org>
size = 254876733
arch = x86_64
license = MPL-2.0
depend = dbus-glib
depend = nss>=3.94
optdepend = networkmanager: Location detection via available WiFi networks
`

func (s *FormatSuite) TestReadDesc(c *C) {
	stanza, err := ReadDesc(strings.NewReader(descFile))
	c.Assert(err, IsNil)

	c.Check(stanza.Get("NAME"), Equals, "firefox")
	c.Check(stanza.Get("VERSION"), Equals, "120.0-1")
	c.Check(stanza["DEPENDS"], DeepEquals, []string{"dbus-glib", "ffmpeg", "gtk3", "libpulse", "nss>=3.94"})
	c.Check(stanza["OPTDEPENDS"], HasLen, 2)
	c.Check(stanza["PROVIDES"], DeepEquals, []string{})
	c.Check(stanza.Get("MISSING"), Equals, "")
}

func (s *FormatSuite) TestReadDescCRLF(c *C) {
	stanza, err := ReadDesc(strings.NewReader("%NAME%\r\nfoo\r\n\r\n%VERSION%\r\n1.0-1\r\n"))
	c.Assert(err, IsNil)
	c.Check(stanza.Get("NAME"), Equals, "foo")
	c.Check(stanza.Get("VERSION"), Equals, "1.0-1")
}

func (s *FormatSuite) TestReadDescMalformed(c *C) {
	_, err := ReadDesc(strings.NewReader("NAME\nfoo\n"))
	c.Check(err, Equals, ErrMalformedStanza)

	_, err = ReadDesc(strings.NewReader("%NAME%\nfoo\n\nbar\n"))
	c.Check(err, Equals, ErrMalformedStanza)
}

func (s *FormatSuite) TestReadDescLongLine(c *C) {
	long := strings.Repeat("x", MaxFieldSize+1)
	_, err := ReadDesc(bytes.NewBufferString("%DESC%\n" + long + "\n"))
	c.Check(err, NotNil)
}

func (s *FormatSuite) TestMerge(c *C) {
	stanza := Stanza{"NAME": {"foo"}, "DEPENDS": {"a"}}
	stanza.Merge(Stanza{"DEPENDS": {"b"}, "PROVIDES": {"c"}})

	c.Check(stanza, DeepEquals, Stanza{"NAME": {"foo"}, "DEPENDS": {"a", "b"}, "PROVIDES": {"c"}})
}

func (s *FormatSuite) TestReadPkgInfo(c *C) {
	stanza, err := ReadPkgInfo(strings.NewReader(pkgInfoFile))
	c.Assert(err, IsNil)

	c.Check(stanza.Get("pkgname"), Equals, "firefox")
	c.Check(stanza.Get("packager"), Equals, "Jan Alexander Steffens (heftig) <heftig@archlinux.org>")
	c.Check(stanza["depend"], DeepEquals, []string{"dbus-glib", "nss>=3.94"})

	_, err = ReadPkgInfo(strings.NewReader("pkgname firefox\n"))
	c.Check(err, Equals, ErrMalformedStanza)
}

func (s *FormatSuite) TestNewPackageFromDesc(c *C) {
	stanza, _ := ReadDesc(strings.NewReader(descFile))

	p := NewPackageFromDesc(stanza, "extra")
	c.Check(p.Repository, Equals, "extra")
	c.Check(p.Name, Equals, "firefox")
	c.Check(p.Filename, Equals, "firefox-120.0-1-x86_64.pkg.tar.zst")
	c.Check(p.Size, Equals, int64(68542337))
	c.Check(p.InstalledSize, Equals, int64(254876733))
	c.Check(p.Licenses, DeepEquals, []string{"MPL-2.0"})
	c.Check(p.OptDependNames(), DeepEquals, []string{"networkmanager", "speech-dispatcher"})
	c.Check(p.FullName(), Equals, "extra/firefox")
	c.Check(p.String(), Equals, "firefox-120.0-1")
}

func (s *FormatSuite) TestNewPackageFromLocalDesc(c *C) {
	stanza := Stanza{
		"NAME":        {"foo"},
		"VERSION":     {"1.0-1"},
		"SIZE":        {"1024"},
		"REASON":      {"1"},
		"INSTALLDATE": {"1700000000"},
	}

	p := NewPackageFromDesc(stanza, LocalRepository)
	c.Check(p.InstalledSize, Equals, int64(1024))
	c.Check(p.Size, Equals, int64(0))
	c.Check(p.IsExplicit(), Equals, false)
	c.Check(p.InstallDate, Equals, int64(1700000000))

	delete(stanza, "REASON")
	c.Check(NewPackageFromDesc(stanza, LocalRepository).IsExplicit(), Equals, true)
}

func (s *FormatSuite) TestNewPackageFromPkgInfo(c *C) {
	stanza, _ := ReadPkgInfo(strings.NewReader(pkgInfoFile))

	p := NewPackageFromPkgInfo(stanza, "/tmp/firefox.pkg.tar.zst")
	c.Check(p.Repository, Equals, FileRepository)
	c.Check(p.Filename, Equals, "/tmp/firefox.pkg.tar.zst")
	c.Check(p.Version, Equals, "120.0-1")
	c.Check(p.BuildDate, Equals, int64(1700767740))
	c.Check(p.InstalledSize, Equals, int64(254876733))
	c.Check(p.Depends, DeepEquals, []string{"dbus-glib", "nss>=3.94"})
}
