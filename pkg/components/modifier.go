package components

// ModifierType 门的属性修改器类型
type ModifierType string

const (
	ModifierAddAllies      ModifierType = "add_allies"
	ModifierRemoveAllies   ModifierType = "remove_allies"
	ModifierMultiplyAllies ModifierType = "multiply_allies"
	ModifierFireRate       ModifierType = "fire_rate"
	ModifierDamage         ModifierType = "damage"
	ModifierPiercing       ModifierType = "piercing"
)

// Modifier 门携带的属性修改器
// IsPositive 只用于门的正负配对和表现层着色，不参与数值计算
type Modifier struct {
	Type       ModifierType
	Value      float64
	Label      string
	IsPositive bool
}

// IsKnown 是否为已知的修改器类型
func (t ModifierType) IsKnown() bool {
	switch t {
	case ModifierAddAllies, ModifierRemoveAllies, ModifierMultiplyAllies,
		ModifierFireRate, ModifierDamage, ModifierPiercing:
		return true
	}
	return false
}
