package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  360,
			Height: 640,
		},
		Bird: BirdConfig{
			X:      360 / 8,
			StartY: 640 / 2,
			Width:  60,
			Height: 70,
		},
		Pipes: PipeConfig{
			Width:  64,
			Height: 512,
		},
		Bonus: BonusConfig{
			Width:  50,
			Height: 50,
			Every:  3,
			Points: 5,
		},
		Physics: PhysicsConfig{
			Gravity:        0.3,
			JumpImpulse:    -5,
			ScrollVelocity: -2,
		},
		Timing: TimingConfig{
			TickRate:      60,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
