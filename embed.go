package main

import "embed"

// dataFS 内置的游戏配置，启动时交给 pkg/embedded
//
//go:embed data/game.yaml
var dataFS embed.FS
