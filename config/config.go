package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRoomWidth  = 10.0
	defaultRoomHeight = 8.0
	defaultRoomDepth  = 20.0
	defaultTargetSize = 1.0

	defaultStationary = 12
	defaultMoving     = 3

	defaultClusterOffset = 6.0
	defaultClusterDepth  = 5.0
	defaultMovingOffset  = 4.0

	defaultSpeedMin      = 0.01
	defaultSpeedMax      = 0.02
	defaultRotationSpeed = 0.025

	defaultHitReward   = 100
	defaultMissPenalty = 50
	defaultMaxTicks    = 9999
	defaultTimerPeriod = 50 * time.Millisecond

	defaultSensitivity = 0.0005
	defaultPitchLimit  = 0.95
	defaultFov         = 75.0
	defaultCameraInset = 1.0
)

var (
	errRoomSize    = errors.New("room dimensions must be >0")
	errTargetSize  = errors.New("target size must be >0 and fit in the room")
	errTargetCount = errors.New("target counts must be >=0 and not both 0")
	errSpeedRange  = errors.New("invalid speed range (0 < min <= max)")
	errScoring     = errors.New("hit reward and miss penalty must be >=0")
	errTimer       = errors.New("timer period and max ticks must be >0")
	errPitchLimit  = errors.New("pitch limit must be in (0, 1]")
	errFov         = errors.New("field of view must be in (0, 180) degrees")
	errSpawnVolume = errors.New("spawn volumes must fit in the room depth")
)

// Room is the size of the box the player stands in.
type Room struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`
}

// HalfWidth returns the horizontal bound of the room centred on the origin.
func (r Room) HalfWidth() float32 {
	return r.Width / 2
}

// Spawn controls where and how many targets are placed.
type Spawn struct {
	Stationary int     `yaml:"stationary"`
	Moving     int     `yaml:"moving"`
	TargetSize float32 `yaml:"target_size"`

	// ClusterOffset is the distance of the stationary cluster centre from
	// the back wall, ClusterDepth its extent along the depth axis.
	ClusterOffset float32 `yaml:"cluster_offset"`
	ClusterDepth  float32 `yaml:"cluster_depth"`
	// MovingOffset places the moving targets behind the cluster.
	MovingOffset float32 `yaml:"moving_offset"`

	SpeedMin      float32 `yaml:"speed_min"`
	SpeedMax      float32 `yaml:"speed_max"`
	RotationSpeed float32 `yaml:"rotation_speed"`
}

type Scoring struct {
	HitReward   int           `yaml:"hit_reward"`
	MissPenalty int           `yaml:"miss_penalty"`
	MaxTicks    int           `yaml:"max_ticks"`
	TimerPeriod time.Duration `yaml:"timer_period"`
}

type Camera struct {
	Sensitivity float64 `yaml:"sensitivity"`
	PitchLimit  float64 `yaml:"pitch_limit"`
	Fov         float64 `yaml:"fov"`
	Inset       float32 `yaml:"inset"`
}

type Config struct {
	Room    Room    `yaml:"room"`
	Spawn   Spawn   `yaml:"spawn"`
	Scoring Scoring `yaml:"scoring"`
	Camera  Camera  `yaml:"camera"`
	// Textures selects the textured target appearance at startup.
	Textures bool `yaml:"textures"`
}

func Default() *Config {
	return &Config{
		Room: Room{
			Width:  defaultRoomWidth,
			Height: defaultRoomHeight,
			Depth:  defaultRoomDepth,
		},
		Spawn: Spawn{
			Stationary:    defaultStationary,
			Moving:        defaultMoving,
			TargetSize:    defaultTargetSize,
			ClusterOffset: defaultClusterOffset,
			ClusterDepth:  defaultClusterDepth,
			MovingOffset:  defaultMovingOffset,
			SpeedMin:      defaultSpeedMin,
			SpeedMax:      defaultSpeedMax,
			RotationSpeed: defaultRotationSpeed,
		},
		Scoring: Scoring{
			HitReward:   defaultHitReward,
			MissPenalty: defaultMissPenalty,
			MaxTicks:    defaultMaxTicks,
			TimerPeriod: defaultTimerPeriod,
		},
		Camera: Camera{
			Sensitivity: defaultSensitivity,
			PitchLimit:  defaultPitchLimit,
			Fov:         defaultFov,
			Inset:       defaultCameraInset,
		},
	}
}

// Parse reads a YAML document on top of the defaults.
// Fields missing from the document keep their default value.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Room.Width <= 0 || c.Room.Height <= 0 || c.Room.Depth <= 0 {
		return errRoomSize
	}
	s := c.Spawn.TargetSize
	if s <= 0 || 2*s > c.Room.Width || 2*s > c.Room.Height {
		return errTargetSize
	}
	if c.Spawn.Stationary < 0 || c.Spawn.Moving < 0 ||
		c.Spawn.Stationary+c.Spawn.Moving == 0 {
		return errTargetCount
	}
	if !c.Spawn.volumesFit(c.Room.Depth) {
		return errSpawnVolume
	}
	if c.Spawn.SpeedMin <= 0 || c.Spawn.SpeedMax < c.Spawn.SpeedMin {
		return errSpeedRange
	}
	if c.Scoring.HitReward < 0 || c.Scoring.MissPenalty < 0 {
		return errScoring
	}
	if c.Scoring.TimerPeriod <= 0 || c.Scoring.MaxTicks <= 0 {
		return errTimer
	}
	if c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit > 1 {
		return errPitchLimit
	}
	if !(c.Camera.Fov > 0 && c.Camera.Fov < 180) {
		return errFov
	}
	return nil
}

// volumesFit reports whether the stationary cluster and the moving row,
// including the target radius, stay between the front and back walls.
func (s Spawn) volumesFit(depth float32) bool {
	if s.ClusterDepth < 0 {
		return false
	}
	r := s.TargetSize / 2
	half := s.ClusterDepth / 2
	switch {
	case s.ClusterOffset < half+r:
		return false
	case depth-s.ClusterOffset-half-r < 0:
		return false
	case s.MovingOffset > s.ClusterOffset-r:
		return false
	case depth-s.ClusterOffset+s.MovingOffset < r:
		return false
	}
	return true
}

// MaxPitch is the absolute pitch bound in radians.
func (c *Config) MaxPitch() float64 {
	return c.Camera.PitchLimit * math.Pi / 2
}
