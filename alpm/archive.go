package alpm

import (
	"archive/tar"
	"bufio"
	"compress/bzip2"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	xz "github.com/smira/go-xz"
)

// sniffSize is number of leading bytes required to detect compression
const sniffSize = 262

// List of detected formats + corresponding uncompression support
var compressionMethods = map[string]func(io.Reader) (io.ReadCloser, error){
	"gz": func(r io.Reader) (io.ReadCloser, error) { return pgzip.NewReader(r) },
	"zst": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
	"xz":  func(r io.Reader) (io.ReadCloser, error) { return xz.NewReader(r) },
	"bz2": func(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(bzip2.NewReader(r)), nil },
}

// Compression detects compression of the stream by its magic bytes
//
// Empty string is returned for unknown (and uncompressed) data.
func Compression(header []byte) string {
	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	if _, ok := compressionMethods[kind.Extension]; !ok {
		return ""
	}
	return kind.Extension
}

// Uncompress wraps reader with decompressor according to detected compression
func Uncompress(r io.Reader) (io.ReadCloser, error) {
	buffered := bufio.NewReaderSize(r, 32768)
	header, err := buffered.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, err
	}

	method, ok := compressionMethods[Compression(header)]
	if !ok {
		return io.NopCloser(buffered), nil
	}

	return method(buffered)
}

// ForEachTarEntry opens (possibly compressed) tar archive and calls handler for
// every regular file in it
//
// Handler should return io.EOF to stop iteration early.
func ForEachTarEntry(path string, handler func(name string, r io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	uncompressed, err := Uncompress(file)
	if err != nil {
		return errors.Wrapf(err, "unable to uncompress %s", path)
	}
	defer uncompressed.Close()

	untar := tar.NewReader(uncompressed)
	for {
		header, err := untar.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "unable to read .tar archive %s", path)
		}

		if !header.FileInfo().Mode().IsRegular() {
			continue
		}

		err = handler(header.Name, untar)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
