package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/blockjump/sim"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// AvatarFile is the prefab loaded at startup and watched for changes.
const AvatarFile = "avatar.yaml"

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

type AvatarSpec struct {
	Name      string      `yaml:"name"`
	Physics   PhysicsSpec `yaml:"physics"`
	World     WorldSpec   `yaml:"world"`
	Palette   PaletteSpec `yaml:"palette"`
	Autopilot string      `yaml:"autopilot"`
}

// PhysicsSpec values are in tiles and seconds. Zero fields keep the default.
type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	JumpHeight   float64 `yaml:"jump_height"`
	Rate         float64 `yaml:"rate"`
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

type WorldSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Avatar     *YAMLColor `yaml:"avatar"`
	Stone      *YAMLColor `yaml:"stone"`
	Breakable  *YAMLColor `yaml:"breakable"`
	JumpPower  *YAMLColor `yaml:"jump_power"`
	GridLine   *YAMLColor `yaml:"grid_line"`
}

func LoadAvatarSpec() (*AvatarSpec, error) {
	spec, err := LoadSpec[AvatarSpec](AvatarFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Tuning overlays the spec on base and validates the result.
func (s *AvatarSpec) Tuning(base sim.Tuning) (sim.Tuning, error) {
	t := base
	if s == nil {
		return t, t.Validate()
	}

	p := s.Physics
	setFloat(&t.Gravity, p.Gravity)
	setFloat(&t.MaxFallSpeed, p.MaxFallSpeed)
	setFloat(&t.MoveSpeed, p.MoveSpeed)
	setFloat(&t.JumpSpeed, p.JumpSpeed)
	setFloat(&t.JumpHeight, p.JumpHeight)
	setFloat(&t.PhysicsRate, p.Rate)
	setFloat(&t.MaxFrameTime, p.MaxFrameTime)

	if s.World.Width != 0 {
		t.GridWidth = s.World.Width
	}
	if s.World.Height != 0 {
		t.GridHeight = s.World.Height
	}
	setFloat(&t.SpawnX, s.World.SpawnX)
	setFloat(&t.SpawnY, s.World.SpawnY)

	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return t, nil
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name such as
// "forestgreen".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	raw := strings.TrimSpace(value.Value)
	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(raw, "#")
	switch len(s) {
	case 6:
		s += "ff"
	case 8:
	default:
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
	}
	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// Or returns the parsed colour, or fallback when the field was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
