package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/smira/flag"
)

// StringOrFileFlag is a flag holding either literal value or contents of
// a file: "@path" reads the file, "@-" reads stdin
type StringOrFileFlag struct {
	value string
}

func (s *StringOrFileFlag) String() string {
	return s.value
}

// Set reads the value, loading file contents if required
func (s *StringOrFileFlag) Set(value string) error {
	var err error
	s.value, err = GetStringOrFileContent(value)
	return err
}

// Get returns flag value
func (s *StringOrFileFlag) Get() any {
	return s.value
}

// AddStringOrFileFlag defines StringOrFileFlag in the flag set
func AddStringOrFileFlag(flagSet *flag.FlagSet, name string, value string, usage string) *StringOrFileFlag {
	result := &StringOrFileFlag{value: value}
	flagSet.Var(result, name, usage)
	return result
}

// GetStringOrFileContent resolves "@file" and "@-" references
func GetStringOrFileContent(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}

	filename := strings.TrimPrefix(value, "@")

	var (
		data []byte
		err  error
	)
	if filename == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
