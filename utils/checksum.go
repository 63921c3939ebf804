package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// ChecksumInfo represents checksums for a single file
type ChecksumInfo struct {
	Size   int64
	MD5    string
	SHA256 string
}

// ChecksumsForFile generates size, MD5 & SHA256 checksums for given file
func ChecksumsForFile(path string) (*ChecksumInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	md5hash, sha256hash := md5.New(), sha256.New()

	size, err := io.Copy(io.MultiWriter(md5hash, sha256hash), file)
	if err != nil {
		return nil, err
	}

	return &ChecksumInfo{
		Size:   size,
		MD5:    hex.EncodeToString(md5hash.Sum(nil)),
		SHA256: hex.EncodeToString(sha256hash.Sum(nil)),
	}, nil
}
