package utils

import (
	"math/rand"
	"time"
)

// RNG 可注入的随机数源
//
// 整个模拟共用同一个 RNG，由顶层场景创建后注入到刷怪、门和 Boss 攻击系统。
// 固定种子即可复现整局游戏。
type RNG struct {
	seed int64
	rng  *rand.Rand
}

// NewRNG 用指定种子创建随机数源
// 种子为 0 时使用当前时间
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回实际使用的种子
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 返回 [0.0, 1.0) 范围内的随机数
func (r *RNG) Float64() float64 {
	return r.rng.Float64()
}

// Intn 返回 [0, n) 范围内的随机整数
// n <= 0 时返回 0
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Range 返回 [min, max) 范围内的随机数
func (r *RNG) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

// Bool 以 50% 概率返回 true
func (r *RNG) Bool() bool {
	return r.rng.Intn(2) == 1
}

// Shuffle 打乱 n 个元素的顺序
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
