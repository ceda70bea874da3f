package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875},
		{"越界取终点", 1.5, 1.0},
		{"负数取起点", -0.3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, want 12.5", got)
	}
}

func TestFadeOut(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		fade      float64
		expected  float64
	}{
		{"淡出前不透明", 1.5, 0.5, 1},
		{"淡出一半", 0.25, 0.5, 0.25},
		{"已结束", 0, 0.5, 0},
		{"无淡出时长", 0.1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FadeOut(tt.remaining, tt.fade); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("FadeOut(%v, %v) = %v, want %v", tt.remaining, tt.fade, got, tt.expected)
			}
		})
	}
}
