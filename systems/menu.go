package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createGame func(levelIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			// Remember the selection so the menu reopens on it next launch.
			UpdateState(func(s *SavedState) { s.LevelIndex = menu.SelectedIndex })
			sceneChanger.ChangeScene(createGame(menu.SelectedIndex))
		}
	}
}

// InitMenu sets the menu options and restores the previous selection.
func InitMenu(ecs *ecs.ECS, options []string, selected int) {
	menu := getOrCreateMenu(ecs)
	menu.Options = options
	if selected >= 0 && selected < len(options) {
		menu.SelectedIndex = selected
	}
}

func getOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

func DrawMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(ecs)

	title := "BOXKID"
	titleFace := fonts.Title.Get()
	titleX := (cfg.C.Width - text.BoundString(titleFace, title).Dx()) / 2
	text.Draw(screen, title, titleFace, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	face := fonts.Regular.Get()
	for i, label := range menu.Options {
		textColor := cfg.Menu.UnselectedColor
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.SelectedColor
			label = "> " + label
		}
		x := (cfg.C.Width - text.BoundString(face, label).Dx()) / 2
		y := int(cfg.Menu.ItemStartY) + i*int(cfg.Menu.ItemHeight)
		text.Draw(screen, label, face, x, y, textColor)
	}

	hintFace := fonts.Small.Get()
	hint := "up/down select, enter play"
	hintX := (cfg.C.Width - text.BoundString(hintFace, hint).Dx()) / 2
	text.Draw(screen, hint, hintFace, hintX, cfg.C.Height-12, cfg.Menu.UnselectedColor)
}
