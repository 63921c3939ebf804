package alpm

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Stanza is parsed metadata file: field name to list of values
//
// desc files of pacman databases and .PKGINFO of package archives both
// allow repeated values, so every field is a list.
type Stanza map[string][]string

// MaxFieldSize is maximum metadata line size in bytes
const MaxFieldSize = 2 * 1024 * 1024

// Parsing errors
var (
	ErrMalformedStanza = errors.New("malformed stanza syntax")
)

// Get returns first value of the field or empty string
func (s Stanza) Get(field string) string {
	values := s[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Merge appends all fields from other stanza
func (s Stanza) Merge(other Stanza) {
	for field, values := range other {
		s[field] = append(s[field], values...)
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scnr := bufio.NewScanner(bufio.NewReaderSize(r, 32768))
	scnr.Buffer(nil, MaxFieldSize)
	return scnr
}

// ReadDesc reads desc (or legacy depends) file of pacman database
//
// Format is a sequence of sections: "%NAME%" header line, one value per
// line, terminated by an empty line.
func ReadDesc(r io.Reader) (Stanza, error) {
	scanner := newScanner(r)
	stanza := make(Stanza, 32)
	field := ""

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			field = ""
			continue
		}

		if field == "" {
			if len(line) < 3 || line[0] != '%' || line[len(line)-1] != '%' {
				return nil, ErrMalformedStanza
			}
			field = line[1 : len(line)-1]
			if _, ok := stanza[field]; !ok {
				stanza[field] = []string{}
			}
			continue
		}

		stanza[field] = append(stanza[field], line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stanza, nil
}

// ReadPkgInfo reads .PKGINFO file from package archive
//
// Format is "key = value" per line, '#' starts a comment.
func ReadPkgInfo(r io.Reader) (Stanza, error) {
	scanner := newScanner(r)
	stanza := make(Stanza, 32)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, ErrMalformedStanza
		}

		key := strings.TrimSpace(parts[0])
		stanza[key] = append(stanza[key], strings.TrimSpace(parts[1]))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stanza, nil
}
