package pathlist

import (
	"testing"

	"github.com/MKhiriev/go-config-load/location"
	"github.com/stretchr/testify/assert"
)

func TestList_Add(t *testing.T) {
	var l List

	path, ok := l.Add(location.Path("/a.toml"))
	assert.True(t, ok)
	assert.Equal(t, "/a.toml", path)

	_, ok = l.Add(location.Path(""))
	assert.False(t, ok)

	_, ok = l.Add(nil)
	assert.False(t, ok)

	l.Add(location.Path("/b.toml"))
	assert.Equal(t, []string{"/a.toml", "/b.toml"}, l.Paths())
	assert.Equal(t, 2, l.Len())
}

func TestList_Retain(t *testing.T) {
	var l List
	for _, p := range []string{"/a", "/b", "/c", "/d"} {
		l.Add(location.Path(p))
	}

	dropped := l.Retain(func(path string) bool { return path == "/b" || path == "/d" })

	assert.Equal(t, []string{"/a", "/c"}, dropped)
	assert.Equal(t, []string{"/b", "/d"}, l.Paths())

	dropped = l.Retain(func(string) bool { return true })
	assert.Empty(t, dropped)
	assert.Equal(t, []string{"/b", "/d"}, l.Paths())
}

func TestList_PathsIsCopy(t *testing.T) {
	var l List
	l.Add(location.Path("/a"))

	paths := l.Paths()
	paths[0] = "/mutated"

	assert.Equal(t, []string{"/a"}, l.Paths())
}

func TestList_Empty(t *testing.T) {
	var l List
	assert.Empty(t, l.Paths())
	assert.Empty(t, l.Retain(func(string) bool { return false }))
}
