package mapfile

import (
	"errors"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/generator"
)

func sampleGrid() *world.Grid {
	g := world.NewGrid(4)
	g.Set(world.Origin, world.Player)
	g.Set(world.Pos(1, 0), world.Wall)
	g.Set(world.Pos(2, 1), world.Wall)
	g.Set(world.Pos(3, 3), world.Treasure)
	g.Set(world.Pos(2, 3), world.Treasure)
	return g
}

func TestEncode_RowsAreY(t *testing.T) {
	mf := Encode(sampleGrid())
	assert.Equal(t, []string{"3100", "0010", "0000", "0022"}, mf.Grid)
	assert.Equal(t, 4, mf.Size)
	assert.Equal(t, 2, mf.Treasures)
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	g := sampleGrid()
	data, err := Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, `{"grid":["3100","0010","0000","0022"],"size":4,"treasures":2}`, string(data))

	got, treasures, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, treasures)
	assert.True(t, g.Equal(got), "decoded grid differs from the original")
}

func TestParse_GeneratedMap(t *testing.T) {
	gen := generator.New(generator.DefaultConfig(), rand.New(rand.NewSource(11)))
	g, _ := gen.Generate()

	data, err := Marshal(g)
	require.NoError(t, err)
	got, treasures, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 3, treasures)
	assert.True(t, g.Equal(got))
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"grid":`,
		"missing grid":      `{"size":2,"treasures":0}`,
		"missing size":      `{"grid":["30","00"],"treasures":0}`,
		"missing treasures": `{"grid":["30","00"],"size":2}`,
		"wrong row count":   `{"grid":["30"],"size":2,"treasures":0}`,
		"short row":         `{"grid":["30","0"],"size":2,"treasures":0}`,
		"bad digit":         `{"grid":["30","05"],"size":2,"treasures":0}`,
		"letter":            `{"grid":["3a","00"],"size":2,"treasures":0}`,
		"no player":         `{"grid":["00","00"],"size":2,"treasures":0}`,
		"two players":       `{"grid":["30","03"],"size":2,"treasures":0}`,
		"zero size":         `{"grid":[],"size":0,"treasures":0}`,
		"negative treasure": `{"grid":["30","00"],"size":2,"treasures":-1}`,
		"size is a string":  `{"grid":["30","00"],"size":"2","treasures":0}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecode_TreasureFieldIsReportedAsIs(t *testing.T) {
	_, treasures, err := Decode(MapFile{Grid: []string{"32", "00"}, Size: 2, Treasures: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, treasures)
}

func TestStore_SaveAllocatesSequentialNames(t *testing.T) {
	s := NewStore(t.TempDir(), 0)
	assert.Equal(t, DefaultMaxMaps, s.MaxMaps)

	for i, want := range []string{"map1.json", "map2.json", "map3.json"} {
		name, err := s.Save(sampleGrid())
		require.NoError(t, err, "save %d", i)
		assert.Equal(t, want, name)
	}

	// A gap is reused before the next number.
	require.NoError(t, os.Remove(filepath.Join(s.Dir, "map2.json")))
	next, err := s.NextName()
	require.NoError(t, err)
	assert.Equal(t, "map2.json", next)

	name, err := s.Save(sampleGrid())
	require.NoError(t, err)
	assert.Equal(t, "map2.json", name)
}

// brokenFile creates the real file but fails on write or close
type brokenFile struct {
	*os.File
	failWrite bool
}

var errDiskFull = errors.New("disk full")

func (f brokenFile) Write(p []byte) (int, error) {
	if f.failWrite {
		return 0, errDiskFull
	}
	return f.File.Write(p[:len(p)/2])
}

func (f brokenFile) Close() error {
	f.File.Close()
	if f.failWrite {
		return nil
	}
	return errDiskFull
}

func TestStore_SaveRemovesPartialFile(t *testing.T) {
	for name, failWrite := range map[string]bool{"write fails": true, "close fails": false} {
		t.Run(name, func(t *testing.T) {
			s := NewStore(t.TempDir(), 10)
			s.create = func(path string) (io.WriteCloser, error) {
				f, err := createExclusive(path)
				if err != nil {
					return nil, err
				}
				return brokenFile{File: f.(*os.File), failWrite: failWrite}, nil
			}

			_, err := s.Save(sampleGrid())
			assert.ErrorIs(t, err, errDiskFull)

			_, err = os.Stat(filepath.Join(s.Dir, "map1.json"))
			assert.ErrorIs(t, err, fs.ErrNotExist, "partial map left on disk")
			names, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, names)
		})
	}
}

func TestStore_Saturated(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, DefaultMaxMaps)
	for n := 1; n <= DefaultMaxMaps; n++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(n)), []byte("{}"), 0o644))
	}

	_, err := s.NextName()
	assert.ErrorIs(t, err, ErrSaturated)

	_, err = s.Save(sampleGrid())
	assert.ErrorIs(t, err, ErrSaturated)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, DefaultMaxMaps, "a file was created despite saturation")
	_, err = os.Stat(filepath.Join(dir, "map1001.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStore_ListOnlyMatchesMapFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, 10)
	for _, name := range []string{"map10.json", "map2.json", "notes.json", "map3.txt", "map1.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "map4.json"), 0o755))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"map1.json", "map2.json", "map10.json"}, names)
}

func TestStore_Load(t *testing.T) {
	s := NewStore(t.TempDir(), 10)
	name, err := s.Save(sampleGrid())
	require.NoError(t, err)

	g, mf, err := s.Load(name)
	require.NoError(t, err)
	assert.True(t, sampleGrid().Equal(g))
	assert.Equal(t, 2, mf.Treasures)

	_, _, err = s.Load("map9.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = s.Load("../map1.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "map5.json"), []byte(`{"grid":["1"],"size":1,"treasures":0}`), 0o644))
	_, _, err = s.Load("map5.json")
	assert.ErrorIs(t, err, ErrMalformed)
	assert.True(t, strings.HasPrefix(err.Error(), "map5.json"))
}

func TestStore_LoadRandomEmpty(t *testing.T) {
	s := NewStore(t.TempDir(), 10)
	_, _, err := s.LoadRandom(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoMaps)
}

func TestStore_LoadOrGenerate(t *testing.T) {
	s := NewStore(t.TempDir(), 10)
	rng := rand.New(rand.NewSource(3))
	gen := generator.New(generator.DefaultConfig(), rng)

	g, name, err := s.LoadOrGenerate(rng, gen)
	require.NoError(t, err)
	assert.Equal(t, "map1.json", name)
	require.NoError(t, g.Validate())

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"map1.json"}, names, "exactly one map should be generated")

	// A populated directory is only read from.
	_, name, err = s.LoadOrGenerate(rng, gen)
	require.NoError(t, err)
	assert.Equal(t, "map1.json", name)
	names, err = s.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestStore_LoadOrGenerateSaturatedButUnreadable(t *testing.T) {
	s := NewStore(t.TempDir(), 0)
	s.MaxMaps = 1
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "map1.json"), []byte("nope"), 0o644))

	_, _, err := s.LoadOrGenerate(rand.New(rand.NewSource(1)), generator.New(generator.DefaultConfig(), rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, ErrMalformed)
}
