package alpm

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Default locations, same as pacman's compiled-in defaults
const (
	DefaultRootDir      = "/"
	DefaultDBPath       = "/var/lib/pacman/"
	DefaultPacmanConfig = "/etc/pacman.conf"
)

// PacmanConfig is the subset of pacman.conf required to find databases
type PacmanConfig struct {
	RootDir string
	DBPath  string
	// Sync repositories, in configuration order
	Repos []string
}

// ParsePacmanConf reads pacman.conf
//
// Every [section] except [options] names a sync repository. DBPath and
// RootDir are taken from [options], when set.
func ParsePacmanConf(filename string) (*PacmanConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read pacman config")
	}
	defer file.Close()

	result := &PacmanConfig{
		RootDir: DefaultRootDir,
		DBPath:  DefaultDBPath,
	}

	section := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		if len(line) < 3 && !strings.Contains(line, "=") {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			section = line[1 : len(line)-1]
			if section != "options" {
				result.Repos = append(result.Repos, section)
			}
			continue
		}

		if section != "options" {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		switch key {
		case "DBPath":
			result.DBPath = value
		case "RootDir":
			result.RootDir = value
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read pacman config")
	}

	return result, nil
}
