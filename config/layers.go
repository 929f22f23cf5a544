package config

import "github.com/yohamta/donburi/ecs"

// Default is the one render/update layer this prototype uses.
const Default ecs.LayerID = iota
