package alpm

import (
	"fmt"
	"io"
	"path"

	"github.com/pacfind/pacfind/utils"
	"github.com/pkg/errors"
)

// LoadPackageFile reads metadata from package archive (.pkg.tar.*)
func LoadPackageFile(filename string) (*Package, error) {
	var stanza Stanza

	err := ForEachTarEntry(filename, func(name string, r io.Reader) error {
		if path.Clean(name) != ".PKGINFO" {
			return nil
		}

		var err error
		stanza, err = ReadPkgInfo(r)
		if err != nil {
			return err
		}
		return io.EOF
	})

	if err != nil {
		return nil, errors.Wrapf(err, "unable to read package %s", filename)
	}

	if stanza == nil {
		return nil, fmt.Errorf("unable to find .PKGINFO in %s", filename)
	}

	p := NewPackageFromPkgInfo(stanza, filename)
	if p.Name == "" {
		return nil, fmt.Errorf("empty package name in %s", filename)
	}

	// archive properties aren't part of .PKGINFO
	checksums, err := utils.ChecksumsForFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read package %s", filename)
	}
	p.Size = checksums.Size
	p.MD5Sum = checksums.MD5
	p.SHA256Sum = checksums.SHA256

	return p, nil
}
