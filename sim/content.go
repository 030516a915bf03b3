package sim

import (
	"errors"
	"fmt"

	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"github.com/milk9111/worldtree/transition"
	"go.uber.org/zap"
)

// LoadContent reads levels from dataDir (embedded data when empty) and the
// prefab specs, then validates every room and the transition table. Gaps in
// the table are logged, or returned as errors when strict is set.
func LoadContent(dataDir string, strict bool, log *zap.Logger) (Content, error) {
	if log == nil {
		log = zap.NewNop()
	}
	world, err := levels.Open(dataDir)
	if err != nil {
		return Content{}, err
	}
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return Content{}, err
	}
	hero, err := prefabs.LoadHeroSpec()
	if err != nil {
		return Content{}, err
	}
	spawns, err := prefabs.LoadSpawnTable()
	if err != nil {
		return Content{}, err
	}
	graph, err := transition.NewGraph(world.Transitions)
	if err != nil {
		return Content{}, err
	}

	if err := CheckRooms(world, RoomConfig(game), spawns); err != nil {
		return Content{}, err
	}
	report, err := graph.Validate(world, strict)
	for _, w := range report.Warnings {
		log.Warn("transition table", zap.String("warning", w))
	}
	if err != nil {
		return Content{}, err
	}
	if _, err := world.Room(game.Start.Region, game.Start.Room); err != nil {
		return Content{}, fmt.Errorf("sim: start room: %w", err)
	}

	log.Info("content loaded",
		zap.String("data", dataOrEmbedded(dataDir)),
		zap.Ints("regions", world.RegionIDs()),
		zap.Int("warnings", len(report.Warnings)))
	return Content{Game: game, Hero: hero, Spawns: spawns, World: world, Graph: graph}, nil
}

// CheckRooms builds every room once so bad grids and unknown mapcodes show
// up at load instead of on entry.
func CheckRooms(world *levels.World, cfg room.Config, codes room.Codebook) error {
	var errs []error
	for _, id := range world.RegionIDs() {
		for _, name := range world.RoomNames(id) {
			data, err := world.Room(id, name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := room.New(id, name, data, cfg, codes); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func dataOrEmbedded(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
