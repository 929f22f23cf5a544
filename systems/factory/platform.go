package factory

import (
	"github.com/badlydrawnrod/boxkid/archetypes"
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform creates a platform that drifts up and down between
// its spawn point and a point TravelDistance pixels above it.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	// The platform moves along a *gween.Sequence of tweens, back and forth.
	travel := cfg.Platform.TravelDistance
	seconds := cfg.Platform.TravelSeconds
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(obj.Y), float32(obj.Y)-travel, seconds, ease.Linear),
		gween.New(float32(obj.Y)-travel, float32(obj.Y), seconds, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}
