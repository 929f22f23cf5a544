package scenes

import (
	"image/color"
	"sync"

	"github.com/badlydrawnrod/boxkid/assets"
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/systems"
	"github.com/badlydrawnrod/boxkid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawners maps level object types to the factory calls that realise them.
var spawners = map[string]func(e *ecs.ECS, obj assets.LevelObject){
	"player_spawn": func(e *ecs.ECS, obj assets.LevelObject) {
		factory.CreatePlayer(e, obj.X, obj.Y)
	},
	"moving_platform": func(e *ecs.ECS, obj assets.LevelObject) {
		factory.CreateFloatingPlatform(e, obj.X, obj.Y, obj.Width, obj.Height)
	},
}

// PlatformerScene runs a single level of the game
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene starting at the first level
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

// NewPlatformerSceneAtLevel creates a platformer scene starting at the given level
func NewPlatformerSceneAtLevel(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Escape backs out to the level select.
	if input, ok := components.Input.First(ps.ecs.World); ok {
		if systems.GetAction(components.Input.Get(input), cfg.ActionPause).JustPressed {
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawFloatingPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(ps.ecs, ps.levelIndex)
	levelData := components.Level.Get(level)

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ps.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)

	factory.CreateCamera(ps.ecs)

	// Create collision objects from solid tiles
	for _, tile := range levelData.CurrentLevel.SolidTiles {
		if tile.OneWay {
			factory.CreateOneWayPlatform(ps.ecs, tile.X, tile.Y, tile.Width, tile.Height)
		} else {
			factory.CreateWall(ps.ecs, tile.X, tile.Y, tile.Width, tile.Height)
		}
	}

	// Spawn entities placed in the level's object layer.
	for _, obj := range levelData.CurrentLevel.Objects {
		if spawn, ok := spawners[obj.Type]; ok {
			spawn(ps.ecs, obj)
		}
	}
}
