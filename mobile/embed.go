//go:build mobile

package mobile

import "embed"

// dataFS 移动端内置配置，构建前需执行 cp -r data mobile/
//
//go:embed data/game.yaml
var dataFS embed.FS
