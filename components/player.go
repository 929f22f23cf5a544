package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	CoyoteFrames int // frames since leaving the ground during which a jump is still allowed
}

var Player = donburi.NewComponentType[PlayerData]()
