// Package embedded 保存根目录 embed.go 声明的配置文件系统
//
// go:embed 只能引用所在包目录下的文件，所以 embed.FS 声明在项目根目录
// （移动端在 mobile/embed.go），启动时通过 Init 交给本包，
// pkg/config 再从这里读取内置配置。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrNotInitialized 在 Init 之前读取文件时返回
var ErrNotInitialized = errors.New("embedded: Init() has not been called")

var dataFS fs.FS

// Init 注册数据文件系统，测试中可以传入 fstest.MapFS
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized 是否已注册文件系统
func IsInitialized() bool {
	return dataFS != nil
}

// ReadFile 读取内置数据文件，路径必须位于 data/ 下
func ReadFile(name string) ([]byte, error) {
	if dataFS == nil {
		return nil, ErrNotInitialized
	}

	name = path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if !strings.HasPrefix(name, "data/") {
		return nil, fmt.Errorf("embedded: %s is outside data/", name)
	}
	return fs.ReadFile(dataFS, name)
}
