// Package config provides YAML-based game configuration loading for
// flappy-cake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Bonus   BonusConfig   `yaml:"bonus"`
	Physics PhysicsConfig `yaml:"physics"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the world size in world units.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player entity.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PipeConfig defines obstacle dimensions.
type PipeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BonusConfig defines the cake collectible.
type BonusConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Every  int     `yaml:"every"`  // Passed pairs between cakes
	Points float64 `yaml:"points"` // Score awarded on collection
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity each tick
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Vertical velocity set by a jump (negative = up)
	ScrollVelocity float64 `yaml:"scroll_velocity"` // Horizontal velocity of pipes and cake (negative = left)
}

// TimingConfig defines the two clocks that drive the game.
type TimingConfig struct {
	TickRate      int           `yaml:"tick_rate"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Exponent on base 2; 0 is unchanged, -1 is half
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board must have positive size, got %gx%g", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("%w: bird must have positive size", ErrInvalidConfig)
	case c.Pipes.Width <= 0 || c.Pipes.Height <= 0:
		return fmt.Errorf("%w: pipes must have positive size", ErrInvalidConfig)
	case c.Bonus.Width <= 0 || c.Bonus.Height <= 0:
		return fmt.Errorf("%w: bonus must have positive size", ErrInvalidConfig)
	case c.Bonus.Every <= 0:
		return fmt.Errorf("%w: bonus.every must be positive, got %d", ErrInvalidConfig, c.Bonus.Every)
	case c.Physics.ScrollVelocity >= 0:
		return fmt.Errorf("%w: physics.scroll_velocity must be negative, got %g", ErrInvalidConfig, c.Physics.ScrollVelocity)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	case c.Timing.SpawnInterval <= 0:
		return fmt.Errorf("%w: timing.spawn_interval must be positive, got %v", ErrInvalidConfig, c.Timing.SpawnInterval)
	}
	return nil
}
