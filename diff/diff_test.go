// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import "testing"

const (
	oldName = "a/src_mini_c/x.rs"
	newName = "b/src_mini_c/x.rs"
	oldText = "abc\ndef\nghi\n"
	newText = "ABC\ndef\nGHI\n"
	want    = "diff a/src_mini_c/x.rs b/src_mini_c/x.rs\n--- a/src_mini_c/x.rs\n+++ b/src_mini_c/x.rs\n@@ -1,3 +1,3 @@\n-abc\n+ABC\n def\n-ghi\n+GHI\n"
)

func TestDiff(t *testing.T) {
	out, err := Diff(oldName, []byte(oldText), newName, []byte(newText))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("Diff: have:\n%s", out)
		t.Errorf("Diff: want:\n%s", want)
	}
}

func TestDiffEqual(t *testing.T) {
	out, err := Diff(oldName, []byte(oldText), newName, []byte(oldText))
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Errorf("Diff of equal inputs: have:\n%s", out)
	}
}

func TestLines(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a\n", []string{"a\n"}},
		{"a\nb\n", []string{"a\n", "b\n"}},
		{"a\nb", []string{"a\n", "b\n\\ No newline at end of file\n"}},
	} {
		have := lines(tt.in)
		if len(have) != len(tt.want) {
			t.Errorf("lines(%q) = %q, want %q", tt.in, have, tt.want)
			continue
		}
		for i := range have {
			if have[i] != tt.want[i] {
				t.Errorf("lines(%q) = %q, want %q", tt.in, have, tt.want)
				break
			}
		}
	}
}
