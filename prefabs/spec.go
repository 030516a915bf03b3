package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SizeSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type ViewportSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type StartSpec struct {
	Region int    `yaml:"region"`
	Room   string `yaml:"room"`
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Solid      *YAMLColor `yaml:"solid"`
	Platform   *YAMLColor `yaml:"platform"`
	Hero       *YAMLColor `yaml:"hero"`
	Enemy      *YAMLColor `yaml:"enemy"`
	Item       *YAMLColor `yaml:"item"`
	Hazard     *YAMLColor `yaml:"hazard"`
	Projectile *YAMLColor `yaml:"projectile"`
	HUD        *YAMLColor `yaml:"hud"`
}

// GameSpec holds world-wide tunables from game.yaml.
type GameSpec struct {
	Name          string       `yaml:"name"`
	TickRate      int          `yaml:"tick_rate"`
	TileSize      int          `yaml:"tile_size"`
	Screen        SizeSpec     `yaml:"screen"`
	Viewport      ViewportSpec `yaml:"viewport"`
	ScrollMargin  PointSpec    `yaml:"scroll_margin"`
	HitStopFrames int          `yaml:"hit_stop_frames"`
	FadeSeconds   float32      `yaml:"fade_seconds"`
	Start         StartSpec    `yaml:"start"`
	Colors        PaletteSpec  `yaml:"colors"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TileSize <= 0 || spec.Viewport.Width <= 0 || spec.Viewport.Height <= 0 {
		return nil, fmt.Errorf("%w: game.yaml needs tile_size and viewport", ErrInvalidSpec)
	}
	if spec.TickRate <= 0 {
		spec.TickRate = 60
	}
	return &spec, nil
}

type InsetSpec struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

type ProjectileSpec struct {
	Name     string `yaml:"name"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Speed    int    `yaml:"speed"`
	Damage   int    `yaml:"damage"`
	Lifetime int    `yaml:"lifetime"`
}

// HeroSpec holds the player tunables from hero.yaml.
type HeroSpec struct {
	Name             string         `yaml:"name"`
	Width            int            `yaml:"width"`
	Height           int            `yaml:"height"`
	Hitbox           InsetSpec      `yaml:"hitbox"`
	HP               int            `yaml:"hp"`
	Damage           int            `yaml:"damage"`
	Accel            int            `yaml:"accel"`
	Speed            int            `yaml:"speed"`
	Gravity          int            `yaml:"gravity"`
	TerminalVelocity int            `yaml:"terminal_velocity"`
	JumpForce        int            `yaml:"jump_force"`
	JumpDuration     int            `yaml:"jump_duration"`
	MaxJumps         int            `yaml:"max_jumps"`
	AttackDuration   int            `yaml:"attack_duration"`
	AttackReach      int            `yaml:"attack_reach"`
	ShootCooldown    int            `yaml:"shoot_cooldown"`
	Ammo             int            `yaml:"ammo"`
	InvulnFrames     int            `yaml:"invulnerability_frames"`
	Pushback         int            `yaml:"pushback"`
	Projectile       ProjectileSpec `yaml:"projectile"`
}

func LoadHeroSpec() (*HeroSpec, error) {
	spec, err := LoadSpec[HeroSpec]("hero.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: hero.yaml needs width and height", ErrInvalidSpec)
	}
	return &spec, nil
}

// EnemySpec describes one enemy mapcode. Behavior selects the movement
// routine: walker, flyer or shooter.
type EnemySpec struct {
	Name             string         `yaml:"name"`
	Behavior         string         `yaml:"behavior"`
	Width            int            `yaml:"width"`
	Height           int            `yaml:"height"`
	HP               int            `yaml:"hp"`
	Damage           int            `yaml:"damage"`
	Accel            int            `yaml:"accel"`
	Speed            int            `yaml:"speed"`
	Gravity          int            `yaml:"gravity"`
	TerminalVelocity int            `yaml:"terminal_velocity"`
	JumpForce        int            `yaml:"jump_force"`
	InvulnFrames     int            `yaml:"invulnerability_frames"`
	Pushback         int            `yaml:"pushback"`
	Range            int            `yaml:"range"`
	Cooldown         int            `yaml:"cooldown"`
	Script           string         `yaml:"script"`
	Boss             bool           `yaml:"boss"`
	Projectile       ProjectileSpec `yaml:"projectile"`
}

// ItemSpec describes a pickup. Effect is one of max_hp, max_jumps,
// max_ammo, heal or ammo.
type ItemSpec struct {
	Name   string `yaml:"name"`
	Effect string `yaml:"effect"`
	Amount int    `yaml:"amount"`
	Unique bool   `yaml:"unique"`
	Chance int    `yaml:"chance"`
}

type AreaSpec struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
}

// SpawnTable maps room mapcodes to what they spawn.
type SpawnTable struct {
	Enemies map[int]EnemySpec `yaml:"enemies"`
	Items   map[int]ItemSpec  `yaml:"items"`
	Areas   map[int]AreaSpec  `yaml:"areas"`
	Drops   []ItemSpec        `yaml:"drops"`
}

func LoadSpawnTable() (*SpawnTable, error) {
	spec, err := LoadSpec[SpawnTable]("spawns.yaml")
	if err != nil {
		return nil, err
	}
	for code := range spec.Enemies {
		if _, clash := spec.Items[code]; clash {
			return nil, fmt.Errorf("%w: mapcode %d is both enemy and item", ErrInvalidSpec, code)
		}
		if _, clash := spec.Areas[code]; clash {
			return nil, fmt.Errorf("%w: mapcode %d is both enemy and area", ErrInvalidSpec, code)
		}
	}
	for code := range spec.Items {
		if _, clash := spec.Areas[code]; clash {
			return nil, fmt.Errorf("%w: mapcode %d is both item and area", ErrInvalidSpec, code)
		}
	}
	return &spec, nil
}

// Lookup reports whether code is known and whether it is an area code.
func (t *SpawnTable) Lookup(code int) (area bool, ok bool) {
	if _, ok := t.Areas[code]; ok {
		return true, true
	}
	if _, ok := t.Enemies[code]; ok {
		return false, true
	}
	_, ok = t.Items[code]
	return false, ok
}

type YAMLColor struct {
	color.Color
}

// Or returns the color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
