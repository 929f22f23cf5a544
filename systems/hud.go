package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	face := fonts.Small.Get()
	text.Draw(screen, levelData.CurrentLevel.Name, face, 8, 16, cfg.Menu.TitleColor)
	text.Draw(screen, "arrows/wasd move, space jump, down+jump drop, esc menu",
		face, 8, cfg.C.Height-8, cfg.Menu.UnselectedColor)
}
