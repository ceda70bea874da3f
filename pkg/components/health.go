package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人、Boss 等可被攻击的实体
type HealthComponent struct {
	Current int // 当前生命值
	Max     int // 最大生命值
}

// NewHealth 创建满血的生命值组件
func NewHealth(max int) HealthComponent {
	return HealthComponent{Current: max, Max: max}
}

// Alive 生命值是否大于 0
func (h HealthComponent) Alive() bool {
	return h.Current > 0
}

// Percent 返回生命值百分比（0.0 - 1.0）
func (h HealthComponent) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	p := float64(h.Current) / float64(h.Max)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
