package entities

import (
	"fmt"
	"math"

	"github.com/jumofe95/lane-shooter/pkg/components"
	"github.com/jumofe95/lane-shooter/pkg/config"
	"github.com/jumofe95/lane-shooter/pkg/utils"
)

var (
	positiveModifiers = []components.ModifierType{
		components.ModifierAddAllies,
		components.ModifierFireRate,
		components.ModifierDamage,
		components.ModifierPiercing,
	}
	negativeModifiers = []components.ModifierType{
		components.ModifierRemoveAllies,
		components.ModifierFireRate,
		components.ModifierDamage,
	}
)

type gateSelection struct {
	modType  components.ModifierType
	positive bool
}

// GenerateGateSet 生成一组横跨所有车道的门
//
// 每组至少有一个正面门和一个负面门，车道顺序随机，每条车道恰好一扇门。
// 车道多于两条时，其余车道随机选择正负。
func GenerateGateSet(cfg *config.GameConfig, rng *utils.RNG) []GateSpec {
	positives := positiveModifiers
	negatives := negativeModifiers
	if cfg.Gate.EnableMultiply {
		positives = append(append([]components.ModifierType{}, positives...), components.ModifierMultiplyAllies)
		negatives = append(append([]components.ModifierType{}, negatives...), components.ModifierMultiplyAllies)
	}

	pick := func(positive bool) gateSelection {
		if positive {
			return gateSelection{positives[rng.Intn(len(positives))], true}
		}
		return gateSelection{negatives[rng.Intn(len(negatives))], false}
	}

	lanes := cfg.Field.NumLanes
	selections := make([]gateSelection, 0, lanes)
	selections = append(selections, pick(true), pick(false))
	for len(selections) < lanes {
		selections = append(selections, pick(rng.Bool()))
	}
	rng.Shuffle(len(selections), func(i, j int) {
		selections[i], selections[j] = selections[j], selections[i]
	})

	specs := make([]GateSpec, lanes)
	for lane := 0; lane < lanes; lane++ {
		sel := selections[lane]
		specs[lane] = GateSpec{
			Lane:     lane,
			X:        utils.LaneCenterX(lane, cfg.Field.Width, lanes),
			Modifier: CreateModifier(sel.modType, sel.positive, rng),
		}
	}
	return specs
}

// CreateModifier 按类型和正负生成修改器数值与显示文本
//
// 数值范围：
//
//	add_allies      +1..2
//	remove_allies   -1
//	multiply_allies x2 / ÷2
//	fire_rate       +0.5..1.0 / -0.2..0.4
//	damage          +3..5 / -1..2
//	piercing        +1 / -1
func CreateModifier(t components.ModifierType, positive bool, rng *utils.RNG) components.Modifier {
	var value float64
	var label string

	switch t {
	case components.ModifierAddAllies:
		value = float64(rng.Intn(2) + 1)
		label = fmt.Sprintf("+%d Allies", int(value))
	case components.ModifierRemoveAllies:
		value = 1
		label = fmt.Sprintf("-%d Ally", int(value))
	case components.ModifierMultiplyAllies:
		if positive {
			value = 2
			label = "x2 Allies"
		} else {
			value = 0.5
			label = "÷2 Allies"
		}
	case components.ModifierFireRate:
		if positive {
			value = roundTenth(0.5 + rng.Float64()*0.5)
		} else {
			value = -roundTenth(0.2 + rng.Float64()*0.2)
		}
		label = fmt.Sprintf("%+.1f Fire Rate", value)
	case components.ModifierDamage:
		if positive {
			value = float64(3 + rng.Intn(3))
		} else {
			value = -float64(1 + rng.Intn(2))
		}
		label = fmt.Sprintf("%+d Damage", int(value))
	case components.ModifierPiercing:
		if positive {
			value = 1
		} else {
			value = -1
		}
		label = fmt.Sprintf("%+d Piercing", int(value))
	default:
		label = "???"
	}

	return components.Modifier{Type: t, Value: value, Label: label, IsPositive: positive}
}

// roundTenth 保留一位小数，保证数值与显示文本一致
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
