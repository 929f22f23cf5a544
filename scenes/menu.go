package scenes

import (
	"image/color"
	"sync"

	"github.com/badlydrawnrod/boxkid/assets"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// One menu entry per shipped level.
	levels := assets.NewLevelLoader().MustLoadLevels()
	options := make([]string, len(levels))
	for i, level := range levels {
		options[i] = level.Name
	}

	selected := 0
	if saved, err := systems.LoadState(); err == nil && saved != nil {
		selected = saved.LevelIndex
	}
	systems.InitMenu(ms.ecs, options, selected)

	createGameScene := func(levelIndex int) interface{} {
		return NewPlatformerSceneAtLevel(ms.sceneChanger, levelIndex)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createGameScene))
	ms.ecs.AddSystem(systems.UpdateDebug)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
