// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilePath is an absolute path. It can be used as flag value with
// [flag.FlagSet.TextVar].
type FilePath string

func (f FilePath) String() string {
	return string(f)
}

// MarshalText implements [encoding.TextMarshaler].
func (f FilePath) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *FilePath) UnmarshalText(text []byte) error {
	path, err := AbsolutePath(string(text))
	if err != nil {
		return err
	}

	*f = FilePath(path)

	return nil
}

// AbsolutePath returns the absolute form of the given path. Empty paths are
// rejected with [ErrEmptyPath].
func AbsolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}

// ValidateFilePath checks that the given path exists and is a regular file.
func ValidateFilePath(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}

// ValidateDirPath checks that the given path exists and is a directory.
func ValidateDirPath(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.IsDir() {
		return ErrNotDirectory
	}

	return nil
}
