// Package transition stitches rooms together. Each side of a room carries an
// ordered list of index ranges; leaving through a range lands the actor in
// the destination room at index+offset on the opposite side.
package transition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/worldtree/levels"
)

var (
	ErrNoTransition     = errors.New("transition: no matching edge")
	ErrUnknownDirection = errors.New("transition: unknown direction")
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"LEFT", "RIGHT", "UP", "DOWN"}

func (d Direction) String() string {
	if d < Left || d > Down {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Opposite is the side an actor enters from after leaving through d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

// Horizontal reports whether d crosses a left or right edge, in which case
// the edge index is a row.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Edge is one exit range. First and Last are inclusive.
type Edge struct {
	First  int
	Last   int
	Region int
	Dest   string
	Offset int
}

func (e Edge) Contains(index int) bool { return index >= e.First && index <= e.Last }

type RoomKey struct {
	Region int
	Room   string
}

func (k RoomKey) String() string { return fmt.Sprintf("%d/%s", k.Region, k.Room) }

type sideKey struct {
	RoomKey
	dir Direction
}

// Graph is read-only once built.
type Graph struct {
	edges map[sideKey][]Edge
}

func NewGraph(table levels.Transitions) (*Graph, error) {
	g := &Graph{edges: make(map[sideKey][]Edge)}
	for region, rooms := range table {
		for room, sides := range rooms {
			for name, list := range sides {
				dir, err := ParseDirection(name)
				if err != nil {
					return nil, fmt.Errorf("transition: %d/%s: %w", region, room, err)
				}
				edges := make([]Edge, 0, len(list))
				for _, e := range list {
					if e.Last < e.First {
						return nil, fmt.Errorf("transition: %d/%s %s: range %d..%d is reversed", region, room, dir, e.First, e.Last)
					}
					edges = append(edges, Edge(e))
				}
				g.edges[sideKey{RoomKey{region, room}, dir}] = edges
			}
		}
	}
	return g, nil
}

// Edges returns the ordered edges on one side of a room.
func (g *Graph) Edges(region int, room string, dir Direction) []Edge {
	return g.edges[sideKey{RoomKey{region, room}, dir}]
}

// Resolve returns the first edge on the given side whose range contains
// index.
func (g *Graph) Resolve(region int, room string, dir Direction, index int) (Edge, error) {
	for _, e := range g.Edges(region, room, dir) {
		if e.Contains(index) {
			return e, nil
		}
	}
	return Edge{}, fmt.Errorf("%w: %d/%s %s index %d", ErrNoTransition, region, room, dir, index)
}

// Rooms lists every room that has at least one edge.
func (g *Graph) Rooms() []RoomKey {
	seen := make(map[RoomKey]bool)
	var out []RoomKey
	for k := range g.edges {
		if !seen[k.RoomKey] {
			seen[k.RoomKey] = true
			out = append(out, k.RoomKey)
		}
	}
	return out
}
