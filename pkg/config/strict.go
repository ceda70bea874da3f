package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CheckUnknownFields 检查 YAML 中是否有结构体不认识的字段
//
// ParseGameConfig 会静默忽略未知字段，拼错的键名会退回默认值，
// 离线校验工具用它提前发现这类问题。
func CheckUnknownFields(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg GameConfig
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unknown or mistyped field: %w", err)
	}
	return nil
}
