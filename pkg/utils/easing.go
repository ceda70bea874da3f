package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，输出同样落在 [0, 1]

// Clamp01 把 t 限制到 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 先快后慢，f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 先慢后快，f(t) = t²
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FadeOut 倒计时类效果的透明度
//
// remaining 剩余时间，fade 淡出时长。剩余时间大于 fade 时完全不透明，
// 之后按 EaseInQuad 衰减到 0。
func FadeOut(remaining, fade float64) float64 {
	if remaining <= 0 {
		return 0
	}
	if fade <= 0 || remaining >= fade {
		return 1
	}
	return EaseInQuad(remaining / fade)
}
