// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unimi-anticounterfeit/arktx/util"
)

func TestFormatBytes(t *testing.T) {
	data := []byte{0xff, 0x02, 0x1e, 0xd1, 0x07, 0x00, 0x00, 0xc9, 0x00}
	expected := "expected := []byte{\n\t0xff, 0x02, 0x1e, 0xd1, 0x07, 0x00, 0x00, 0xc9,\n\t0x00,\n}"
	assert.Equal(t, expected, util.FormatBytes("expected", data), "wrong format")

	assert.Equal(t, "empty := []byte{\n}", util.FormatBytes("empty", nil), "wrong empty format")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/arktx/log", util.EnsureAbsolute("/etc/arktx", "log"), "relative path")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/etc/arktx", "/var/log/"), "absolute path")
	assert.Equal(t, "/etc/log", util.EnsureAbsolute("/etc/arktx", "../log"), "parent path")
}

func TestEnsureFileExists(t *testing.T) {
	dir := os.TempDir()
	assert.False(t, util.EnsureFileExists(dir), "directory reported as file")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "arktx-no-such-file")), "missing file reported")

	f, err := os.Create(filepath.Join(dir, "arktx-util-test"))
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	defer os.Remove(f.Name())
	f.Close()
	assert.True(t, util.EnsureFileExists(f.Name()), "file not found")
}
