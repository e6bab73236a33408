package mapfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/generator"
)

// DefaultMaxMaps is the highest map number a store will allocate
const DefaultMaxMaps = 1000

const (
	mapPrefix    = "map"
	mapExtension = ".json"
	mapGlob      = mapPrefix + "*" + mapExtension
)

var (
	// ErrSaturated means every name map1.json..map<max>.json is taken
	ErrSaturated = errors.New("maximum map count reached")

	// ErrNoMaps means no map file could be found or created
	ErrNoMaps = errors.New("no map files found")

	validName = regexp.MustCompile(`^map[^/\\]*\.json$`)
)

// Store manages the map files of one directory
type Store struct {
	Dir     string
	MaxMaps int

	// create opens a new map file exclusively; nil uses createExclusive
	create func(path string) (io.WriteCloser, error)
}

func createExclusive(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// NewStore creates a store over dir. maxMaps <= 0 selects DefaultMaxMaps.
func NewStore(dir string, maxMaps int) *Store {
	if maxMaps <= 0 {
		maxMaps = DefaultMaxMaps
	}
	return &Store{Dir: dir, MaxMaps: maxMaps}
}

// FileName returns the file name for map number n
func FileName(n int) string {
	return mapPrefix + strconv.Itoa(n) + mapExtension
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

// NextName returns the first unused map name, or ErrSaturated
func (s *Store) NextName() (string, error) {
	for n := 1; n <= s.MaxMaps; n++ {
		name := FileName(n)
		if _, err := os.Stat(s.path(name)); errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w (%d)", ErrSaturated, s.MaxMaps)
}

// Save writes g under the first unused map name and returns that name.
// Files are created exclusively so a concurrent writer never gets overwritten.
func (s *Store) Save(g *world.Grid) (string, error) {
	data, err := Marshal(g)
	if err != nil {
		return "", err
	}

	create := s.create
	if create == nil {
		create = createExclusive
	}

	for n := 1; n <= s.MaxMaps; n++ {
		name := FileName(n)
		path := s.path(name)
		f, err := create(path)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", name, err)
		}

		_, err = f.Write(data)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
			return "", fmt.Errorf("write %s: %w", name, err)
		}
		return name, nil
	}
	return "", fmt.Errorf("%w (%d)", ErrSaturated, s.MaxMaps)
}

// List returns the names of all map*.json files, sorted by map number
func (s *Store) List() ([]string, error) {
	matches, err := filepath.Glob(s.path(mapGlob))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			names = append(names, filepath.Base(m))
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ni, ei := mapNumber(names[i])
		nj, ej := mapNumber(names[j])
		if ei == nil && ej == nil && ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names, nil
}

func mapNumber(name string) (int, error) {
	digits := name[len(mapPrefix) : len(name)-len(mapExtension)]
	return strconv.Atoi(digits)
}

// ReadFile returns the raw bytes of a named map
func (s *Store) ReadFile(name string) ([]byte, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("map %q: %w", name, fs.ErrNotExist)
	}
	return os.ReadFile(s.path(name))
}

// Load reads and decodes a named map
func (s *Store) Load(name string) (*world.Grid, MapFile, error) {
	data, err := s.ReadFile(name)
	if err != nil {
		return nil, MapFile{}, err
	}
	mf, err := Unmarshal(data)
	if err != nil {
		return nil, MapFile{}, fmt.Errorf("%s: %w", name, err)
	}
	g, _, err := Decode(mf)
	if err != nil {
		return nil, MapFile{}, fmt.Errorf("%s: %w", name, err)
	}
	return g, mf, nil
}

// LoadRandom loads a uniformly chosen map from the directory
func (s *Store) LoadRandom(rng *rand.Rand) (*world.Grid, string, error) {
	names, err := s.List()
	if err != nil {
		return nil, "", err
	}
	if len(names) == 0 {
		return nil, "", ErrNoMaps
	}
	name := names[rng.Intn(len(names))]
	g, _, err := s.Load(name)
	if err != nil {
		return nil, "", err
	}
	return g, name, nil
}

// LoadOrGenerate loads a random map. If the directory holds none, exactly one
// map is generated and saved before scanning again.
func (s *Store) LoadOrGenerate(rng *rand.Rand, gen generator.GridGenerator) (*world.Grid, string, error) {
	g, name, err := s.LoadRandom(rng)
	if !errors.Is(err, ErrNoMaps) {
		return g, name, err
	}

	grid, _ := gen.Generate()
	created, err := s.Save(grid)
	if err != nil {
		return nil, "", err
	}
	log.WithFields(log.Fields{"map": created, "generator": gen.Name()}).Info("generated map on demand")

	return s.LoadRandom(rng)
}
