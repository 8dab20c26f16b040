package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// ErrInvalid wraps every validation problem reported by Validate.
var ErrInvalid = errors.New("scenario: invalid")

// Town is one town entry.
type Town struct {
	ID   core.TownID `yaml:"id"`
	Name string      `yaml:"name"`
	X    int         `yaml:"x"`
	Y    int         `yaml:"y"`
	Tax  int         `yaml:"tax"`
}

// Vassalship makes Vassal pay tax to Master.
type Vassalship struct {
	Vassal core.TownID `yaml:"vassal"`
	Master core.TownID `yaml:"master"`
}

// Road is a two-element sequence of town IDs.
type Road []core.TownID

// Scenario is a complete realm description.
type Scenario struct {
	Towns   []Town       `yaml:"towns"`
	Vassals []Vassalship `yaml:"vassals"`
	Roads   []Road       `yaml:"roads"`
}

// Load decodes and validates a scenario. An empty document is an empty,
// valid scenario.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks IDs and references without building anything. It reports
// every problem found, each wrapping ErrInvalid.
func (s *Scenario) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	known := make(map[core.TownID]bool, len(s.Towns))
	for i, t := range s.Towns {
		switch {
		case t.ID == "":
			bad("town %d: empty id", i)
		case known[t.ID]:
			bad("town %d: duplicate id %q", i, t.ID)
		}
		if c := (geo.Coord{X: t.X, Y: t.Y}); !c.InRange() {
			bad("town %d: coordinate %s beyond ±%d", i, c, geo.MaxCoord)
		}
		known[t.ID] = true
	}
	for i, v := range s.Vassals {
		if !known[v.Vassal] || !known[v.Master] {
			bad("vassal %d: unknown town in %q→%q", i, v.Vassal, v.Master)
		}
	}
	for i, rd := range s.Roads {
		if len(rd) != 2 {
			bad("road %d: want 2 towns, got %d", i, len(rd))
			continue
		}
		if !known[rd[0]] || !known[rd[1]] {
			bad("road %d: unknown town in %q-%q", i, rd[0], rd[1])
		}
	}

	return errors.Join(errs...)
}

// Build creates a realm with opts and applies towns, vassalships and roads
// in file order. The first failing step aborts the build.
func (s *Scenario) Build(opts ...core.Option) (*core.Realm, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := core.New(opts...)
	for i, t := range s.Towns {
		name := t.Name
		if name == "" {
			name = string(t.ID)
		}
		if err := r.AddTown(t.ID, name, geo.Coord{X: t.X, Y: t.Y}, t.Tax); err != nil {
			return nil, fmt.Errorf("scenario: town %d: %w", i, err)
		}
	}
	for i, v := range s.Vassals {
		if err := r.AddVassalship(v.Vassal, v.Master); err != nil {
			return nil, fmt.Errorf("scenario: vassal %d: %w", i, err)
		}
	}
	for i, rd := range s.Roads {
		if err := r.AddRoad(rd[0], rd[1]); err != nil {
			return nil, fmt.Errorf("scenario: road %d: %w", i, err)
		}
	}

	return r, nil
}
