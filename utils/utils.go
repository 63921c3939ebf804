// Package utils collects various services: configuration, logging, checksums, etc.
package utils

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DirIsAccessible verifies that directory, if it exists, is writable
func DirIsAccessible(filename string) error {
	fileStat, err := os.Stat(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error checking directory '%s': %s", filename, err)
		}
	} else {
		if fileStat.Mode().Perm() == 0000 || unix.Access(filename, unix.W_OK) != nil {
			return fmt.Errorf("'%s' is inaccessible, check access rights", filename)
		}
	}
	return nil
}

// PrepareDir checks directory access and creates it with parents if missing
func PrepareDir(dirname string) error {
	if err := DirIsAccessible(dirname); err != nil {
		return err
	}
	return os.MkdirAll(dirname, 0755)
}
