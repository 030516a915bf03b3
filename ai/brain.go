// Package ai runs enemy decision scripts.
package ai

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/worldtree/prefabs"
)

var ErrNoScript = errors.New("ai: no script")

// Senses is what an enemy knows about its surroundings this tick.
type Senses struct {
	Blocked     bool
	GroundAhead bool
	// Facing is -1 for left and 1 for right.
	Facing int
	HeroDX int
	HeroDY int
}

type Decision struct {
	Turn bool
	Jump bool
}

// Brain decides what an enemy does next.
type Brain interface {
	Decide(s Senses) (Decision, error)
}

// Patrol turns around at walls and ledges. It is used when no script is set.
type Patrol struct{}

func (Patrol) Decide(s Senses) (Decision, error) {
	return Decision{Turn: s.Blocked || !s.GroundAhead}, nil
}

// Script is a compiled tengo program. Inputs are declared as globals before
// compilation and outputs are read back after each run.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

var inputs = map[string]any{
	"blocked":      false,
	"ground_ahead": true,
	"facing":       1,
	"hero_dx":      0,
	"hero_dy":      0,
	"turn":         false,
	"jump":         false,
}

// Compile builds a script from source.
func Compile(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for k, v := range inputs {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("ai: %s: declare %s: %w", name, k, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: %s: compile: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Load compiles a script from the prefab scripts directory.
func Load(name string) (*Script, error) {
	if name == "" {
		return nil, ErrNoScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Clone gives each enemy its own globals.
func (s *Script) Clone() *Script {
	return &Script{name: s.name, compiled: s.compiled.Clone()}
}

func (s *Script) Name() string { return s.name }

func (s *Script) Decide(in Senses) (Decision, error) {
	set := []struct {
		name string
		v    any
	}{
		{"blocked", in.Blocked},
		{"ground_ahead", in.GroundAhead},
		{"facing", in.Facing},
		{"hero_dx", in.HeroDX},
		{"hero_dy", in.HeroDY},
		{"turn", false},
		{"jump", false},
	}
	for _, kv := range set {
		if err := s.compiled.Set(kv.name, kv.v); err != nil {
			return Decision{}, fmt.Errorf("ai: %s: set %s: %w", s.name, kv.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return Decision{}, fmt.Errorf("ai: %s: run: %w", s.name, err)
	}
	return Decision{
		Turn: s.compiled.Get("turn").Bool(),
		Jump: s.compiled.Get("jump").Bool(),
	}, nil
}

// Cache compiles each script once and hands out clones.
type Cache struct {
	scripts map[string]*Script
}

func NewCache() *Cache {
	return &Cache{scripts: make(map[string]*Script)}
}

// Brain returns a fresh brain for the named script, or Patrol when name is
// empty.
func (c *Cache) Brain(name string) (Brain, error) {
	if name == "" {
		return Patrol{}, nil
	}
	s, ok := c.scripts[name]
	if !ok {
		var err error
		s, err = Load(name)
		if err != nil {
			return nil, err
		}
		c.scripts[name] = s
	}
	return s.Clone(), nil
}

// Reset drops compiled scripts so edited files are picked up.
func (c *Cache) Reset() {
	clear(c.scripts)
}
