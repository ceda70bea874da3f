package app

import "github.com/jumofe95/lane-shooter/pkg/config"

// 逻辑屏幕尺寸（竖屏）
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// 俯视图显示的纵深范围
const (
	viewNearZ    = 12.0
	hudHeight    = 64.0
	fieldMarginX = 40.0
)

// fieldLayout 世界坐标到屏幕坐标的映射（俯视，-Z 在屏幕上方）
type fieldLayout struct {
	originX float64 // 世界 X=0 对应的屏幕 X
	scaleX  float64 // 每单位世界 X 的像素数
	farZ    float64 // 屏幕顶部对应的纵深
	scaleZ  float64 // 每单位世界 Z 的像素数
	top     float64 // 战场顶部的屏幕 Y
}

func newFieldLayout(cfg *config.GameConfig) fieldLayout {
	farZ := cfg.Enemy.SpawnZ - cfg.Enemy.RowStagger*float64(cfg.Enemy.StaggerRows)
	return fieldLayout{
		originX: ScreenWidth / 2,
		scaleX:  (ScreenWidth - 2*fieldMarginX) / cfg.Field.Width,
		farZ:    farZ,
		scaleZ:  (ScreenHeight - hudHeight) / (viewNearZ - farZ),
		top:     hudHeight,
	}
}

// ToScreen 世界坐标 (x, z) 转换为屏幕坐标
func (l fieldLayout) ToScreen(x, z float64) (float64, float64) {
	return l.originX + x*l.scaleX, l.top + (z-l.farZ)*l.scaleZ
}

// WorldX 屏幕 X 转换为世界 X（触摸跟随）
func (l fieldLayout) WorldX(screenX float64) float64 {
	return (screenX - l.originX) / l.scaleX
}

// Length 世界长度转换为像素（横向）
func (l fieldLayout) Length(v float64) float64 {
	return v * l.scaleX
}

// Depth 世界纵深长度转换为像素
func (l fieldLayout) Depth(v float64) float64 {
	return v * l.scaleZ
}
