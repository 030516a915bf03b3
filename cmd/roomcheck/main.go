// Command roomcheck validates game content and prints each region's room
// layout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/sim"
	"github.com/milk9111/worldtree/transition"
	"go.uber.org/zap"
)

func main() {
	dataDir := flag.String("data", "", "content directory (embedded data when empty)")
	strict := flag.Bool("strict", false, "treat gaps in the transition table as errors")
	verbose := flag.Bool("v", false, "log warnings and load details")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			log = l
		}
	}
	if *dataDir != "" {
		prefabs.Dir = filepath.Join(*dataDir, "prefabs")
	}

	content, err := sim.LoadContent(*dataDir, *strict, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "roomcheck:", err)
		os.Exit(1)
	}
	printLayout(os.Stdout, content)
}

func printLayout(out io.Writer, c sim.Content) {
	linked := make(map[transition.RoomKey]bool)
	for _, k := range c.Graph.Rooms() {
		linked[k] = true
	}
	for _, id := range c.World.RegionIDs() {
		reg := c.World.Regions[id]
		fmt.Fprintf(out, "region %d %q (start %s)\n", id, reg.Name, reg.Start)

		layout := c.Graph.Layout(id, reg.Start, c.World)
		for _, name := range c.World.RoomNames(id) {
			w, h, _ := c.World.RoomSize(id, name)
			links := exits(c.Graph, id, name)
			if !linked[transition.RoomKey{Region: id, Room: name}] {
				links = "no exits"
			}
			pos, ok := layout[name]
			if !ok {
				fmt.Fprintf(out, "  %-8s %3dx%-3d unreachable from %s, %s\n", name, w, h, reg.Start, links)
				continue
			}
			fmt.Fprintf(out, "  %-8s %3dx%-3d at %4d,%-4d %s\n", name, w, h, pos.X, pos.Y, links)
		}
	}
}

func exits(g *transition.Graph, region int, room string) string {
	var names []string
	for _, dir := range []transition.Direction{transition.Left, transition.Right, transition.Up, transition.Down} {
		for _, e := range g.Edges(region, room, dir) {
			names = append(names, fmt.Sprintf("%s[%d..%d]->%d/%s", dir, e.First, e.Last, e.Region, e.Dest))
		}
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}
