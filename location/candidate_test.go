package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func present(path string) Candidate {
	return func() (string, bool) { return path, true }
}

func absent() Candidate {
	return func() (string, bool) { return "", false }
}

func TestFirstSome(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		wantPath   string
		wantOK     bool
	}{
		{name: "no candidates", candidates: nil},
		{name: "all absent", candidates: []Candidate{absent(), absent()}},
		{name: "first present wins", candidates: []Candidate{present("/a"), present("/b")}, wantPath: "/a", wantOK: true},
		{name: "skips absent", candidates: []Candidate{absent(), present("/b"), present("/c")}, wantPath: "/b", wantOK: true},
		{name: "nil candidate skipped", candidates: []Candidate{nil, present("/c")}, wantPath: "/c", wantOK: true},
		{name: "empty value is present", candidates: []Candidate{present(""), present("/b")}, wantPath: "", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := FirstSome(tt.candidates...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestFirstSome_StopsAtFirstHit(t *testing.T) {
	var calls []string
	record := func(name string, ok bool) Candidate {
		return func() (string, bool) {
			calls = append(calls, name)
			if !ok {
				return "", false
			}
			return "/" + name, true
		}
	}

	path, ok := FirstSome(record("a", false), record("b", true), record("c", true))

	assert.True(t, ok)
	assert.Equal(t, "/b", path)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestPath_Literal(t *testing.T) {
	path, ok := Path("/etc/app.toml").Path()
	assert.True(t, ok)
	assert.Equal(t, "/etc/app.toml", path)

	path, ok = Path("").Path()
	assert.False(t, ok)
	assert.Empty(t, path)
}
