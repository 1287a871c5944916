// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorList(t *testing.T) {
	var l ErrorList
	assert.NoError(t, l.Err())
	assert.Equal(t, "no errors", l.Error())

	l.Add(nil)
	l.Add(&Error{Path: "b.rs", Err: errors.New("write: denied")})
	l.Add(&Error{Path: "a.rs", Err: errors.New("read: gone")})
	l.Add(&Error{Path: "a.rs", Err: errors.New("read: gone")})
	l.Add(errors.New("walking src_x: gone"))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "walking src_x: gone\na.rs: read: gone\nb.rs: write: denied", l.Error())
	assert.Same(t, &l, l.Err())

	var m ErrorList
	m.Add(&l)
	assert.Equal(t, l.Error(), m.Error())
}

func TestErrorListCollapse(t *testing.T) {
	var l ErrorList
	for i := 0; i < 5; i++ {
		l.Add(&Error{Path: fmt.Sprintf("f%d.rs", i), Err: errors.New("write: read-only file system")})
	}
	assert.Equal(t, "f0.rs: write: read-only file system [× 5]", l.Error())
	assert.Len(t, l.Errors(), 5)
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("base")
	e := &Error{Path: "x.rs", Err: fmt.Errorf("read: %w", base)}
	assert.ErrorIs(t, e, base)
	assert.True(t, strings.HasPrefix(e.Error(), "x.rs: "))
}
