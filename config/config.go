package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Zoom   float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64

	// Physics
	Gravity  float64
	Friction float64

	// Jump forgiveness
	CoyoteFrames int // frames after leaving a ledge during which a jump still works

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	Color color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSpeed float64 // 0..1, fraction of the distance to the target covered per frame
}

// PlatformConfig configures floating platforms spawned from level objects
type PlatformConfig struct {
	TravelDistance float32 // pixels of vertical travel
	TravelSeconds  float32 // seconds for one leg of the trip
}

// MenuConfig contains menu screen configuration
type MenuConfig struct {
	TitleY          float64
	ItemStartY      float64
	ItemHeight      float64
	TitleColor      color.RGBA
	SelectedColor   color.RGBA
	UnselectedColor color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	DrawObjects bool // Draw collision object outlines
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Platform PlatformConfig
var Menu MenuConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Zoom:   2.0,
	}

	Player = PlayerConfig{
		JumpSpeed:       6.5,
		Acceleration:    0.5,
		MaxSpeed:        2.5,
		Gravity:         0.35,
		Friction:        0.3,
		CoyoteFrames:    6,
		CollisionWidth:  12,
		CollisionHeight: 14,
		Color:           color.RGBA{R: 235, G: 222, B: 96, A: 255},
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 7.0,
	}

	Camera = CameraConfig{
		FollowSpeed: 0.12,
	}

	Platform = PlatformConfig{
		TravelDistance: 64,
		TravelSeconds:  2,
	}

	Menu = MenuConfig{
		TitleY:          96,
		ItemStartY:      160,
		ItemHeight:      24,
		TitleColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SelectedColor:   color.RGBA{R: 100, G: 180, B: 255, A: 255},
		UnselectedColor: color.RGBA{R: 60, G: 100, B: 160, A: 255},
	}

	Debug = DebugConfig{}
}
