package pathstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/reentry/cycle"
	"github.com/katalvlaran/reentry/mesh"
	"github.com/katalvlaran/reentry/velocity"
)

// Cache stores search results by input fingerprint.
type Cache struct {
	db *bolthold.Store
}

// Entry is one cached search result.
type Entry struct {
	Fingerprint string  `json:"fingerprint"`
	Rotors      [][]int `json:"rotors"`
	CreatedAt   int64   `json:"createdAt"`
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "pathstore: open cache %s", path)
	}

	return &Cache{db: db}, nil
}

// Get returns the rotors stored under fingerprint, if any.
func (c *Cache) Get(fingerprint string) ([][]int, bool, error) {
	var e Entry
	if err := c.db.Get(fingerprint, &e); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, pkgerrors.Wrap(err, "pathstore: cache get")
	}
	if e.Rotors == nil {
		e.Rotors = [][]int{}
	}

	return e.Rotors, true, nil
}

// Put stores rotors under fingerprint, replacing any previous entry.
func (c *Cache) Put(fingerprint string, rotors [][]int) error {
	e := &Entry{
		Fingerprint: fingerprint,
		Rotors:      rotors,
		CreatedAt:   time.Now().Unix(),
	}

	return pkgerrors.Wrap(c.db.Upsert(fingerprint, e), "pathstore: cache put")
}

// Close releases the database file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Fingerprint hashes everything a functional search result depends on:
// point coordinates, adjacency, velocity field, bounds and any extra
// option strings (e.g. the closing-time mode).
func Fingerprint(m *mesh.Mesh, field velocity.Field, b cycle.Bounds, extra ...string) (string, error) {
	if m == nil {
		return "", errors.New("pathstore: nil mesh")
	}
	d := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		d.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		d.Write(buf[:])
	}

	putInt(len(m.Points))
	for _, p := range m.Points {
		putFloat(p.X)
		putFloat(p.Y)
		putFloat(p.Z)
	}
	for v := range m.Points {
		nbrs, err := m.Adjacency.Neighbors(v)
		if err != nil {
			return "", err
		}
		putInt(len(nbrs))
		for _, w := range nbrs {
			putInt(w)
		}
	}

	putInt(len(field))
	for _, e := range field {
		putFloat(e.Fiber.X)
		putFloat(e.Fiber.Y)
		putFloat(e.Fiber.Z)
		putFloat(e.Speed)
		putFloat(e.Penalty)
	}

	putFloat(b.MinDist)
	putFloat(b.MaxDist)
	putInt(b.MinTime)
	putInt(b.MaxTime)
	for _, s := range extra {
		putInt(len(s))
		d.Write([]byte(s))
	}

	return fmt.Sprintf("%016x", d.Sum64()), nil
}
