package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDiff = `diff --git a/app.py b/app.py
index 83db48f..bf269f4 100644
--- a/app.py
+++ b/app.py
@@ -1,4 +1,5 @@
 import os
-def old():
+def new_handler():
+    return fix_bug()
     pass
`

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want string
	}{
		{
			name: "added lines only",
			diff: sampleDiff,
			want: "def new_handler(): return fix_bug()",
		},
		{
			name: "no additions",
			diff: "--- a/x\n+++ b/x\n-gone\n context",
			want: "",
		},
		{
			name: "empty input",
			diff: "",
			want: "",
		},
		{
			name: "garbage input",
			diff: "not a diff at all",
			want: "",
		},
		{
			name: "crlf endings",
			diff: "+first\r\n+second\r\n",
			want: "first second",
		},
		{
			name: "blank added line keeps its slot",
			diff: "+a\n+\n+b",
			want: "a  b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.diff))
		})
	}
}

func TestExtract_OnlyAddedLinesSurvive(t *testing.T) {
	var b strings.Builder
	b.WriteString("--- a/f\n+++ b/f\n")
	added := []string{"alpha", "beta", "gamma", "delta"}
	for i, word := range added {
		b.WriteString("+" + word + "\n")
		b.WriteString("-removed" + string(rune('a'+i)) + "\n")
		b.WriteString(" context" + string(rune('a'+i)) + "\n")
	}

	got := Extract(b.String())
	assert.Equal(t, strings.Join(added, " "), got)
	assert.Len(t, strings.Fields(got), len(added))
	assert.NotContains(t, got, "removed")
	assert.NotContains(t, got, "context")
}

func TestCountLines(t *testing.T) {
	stats := CountLines(sampleDiff)
	assert.Equal(t, Stats{Added: 2, Removed: 1}, stats)
}
