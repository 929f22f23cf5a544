package components

import "github.com/yohamta/donburi"

type MenuData struct {
	SelectedIndex int
	Options       []string
}

var Menu = donburi.NewComponentType[MenuData]()
