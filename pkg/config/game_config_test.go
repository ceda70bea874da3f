package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultGameConfig 默认配置应包含基础参数和派生值
func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Field.Width != 20 || cfg.Field.NumLanes != 2 {
		t.Errorf("field = %+v, want width 20 with 2 lanes", cfg.Field)
	}
	if cfg.Field.LaneWidth != 10 {
		t.Errorf("LaneWidth = %v, want 10", cfg.Field.LaneWidth)
	}
	if math.Abs(cfg.Gate.Width-9.5) > 1e-9 {
		t.Errorf("Gate.Width = %v, want 9.5", cfg.Gate.Width)
	}
	if cfg.Player.HalfWidth != 9 {
		t.Errorf("Player.HalfWidth = %v, want 9", cfg.Player.HalfWidth)
	}
	if cfg.Boss.LateralAmplitude != 6 {
		t.Errorf("Boss.LateralAmplitude = %v, want 6", cfg.Boss.LateralAmplitude)
	}
	if cfg.MaxDeltaTime != 0.1 {
		t.Errorf("MaxDeltaTime = %v, want 0.1", cfg.MaxDeltaTime)
	}
	if cfg.Player.MaxHealth != 100 || cfg.Player.StartDamage != 10 || cfg.Player.StartFireRate != 3 {
		t.Errorf("player start stats = %+v", cfg.Player)
	}
	if cfg.Gate.EnableMultiply {
		t.Error("EnableMultiply should default to false")
	}
}

// TestParseGameConfig 测试 YAML 解析、默认值和验证
func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:        "空配置使用默认值",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Enemy.HealthBase != 30 {
					t.Errorf("Enemy.HealthBase = %d, want 30", cfg.Enemy.HealthBase)
				}
				if cfg.Wave.WavesBeforeBoss != 5 {
					t.Errorf("Wave.WavesBeforeBoss = %d, want 5", cfg.Wave.WavesBeforeBoss)
				}
			},
		},
		{
			name: "部分覆盖",
			yamlContent: `
field:
  width: 30
  numLanes: 3
gate:
  enableMultiply: true
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Field.LaneWidth != 10 {
					t.Errorf("LaneWidth = %v, want 10", cfg.Field.LaneWidth)
				}
				if cfg.Player.HalfWidth != 14 {
					t.Errorf("Player.HalfWidth = %v, want 14", cfg.Player.HalfWidth)
				}
				if !cfg.Gate.EnableMultiply {
					t.Error("EnableMultiply = false, want true")
				}
				// 未覆盖的字段保持默认
				if cfg.Field.Depth != 100 {
					t.Errorf("Field.Depth = %v, want 100", cfg.Field.Depth)
				}
			},
		},
		{
			name: "单车道非法",
			yamlContent: `
field:
  numLanes: 1
`,
			wantErr:     true,
			errContains: "numLanes",
		},
		{
			name: "门生成间隔非法",
			yamlContent: `
gate:
  spawnMin: 10
  spawnMax: 6
`,
			wantErr:     true,
			errContains: "gate spawn interval",
		},
		{
			name: "缺口比屏障宽",
			yamlContent: `
attack:
  barrierWidth: 2
  barrierGapWidth: 3
`,
			wantErr:     true,
			errContains: "barrierGapWidth",
		},
		{
			name: "回血比例超出范围",
			yamlContent: `
player:
  levelRegenFraction: 1.5
`,
			wantErr:     true,
			errContains: "levelRegenFraction",
		},
		{
			name:        "YAML 格式错误",
			yamlContent: "field: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestLoadGameConfig 测试从文件加载
func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  wavesBeforeBoss: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Wave.WavesBeforeBoss != 2 {
		t.Errorf("WavesBeforeBoss = %d, want 2", cfg.Wave.WavesBeforeBoss)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestBundledConfigMatchesDefaults 仓库自带的 data/game.yaml 应与内置默认值一致
func TestBundledConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	def := DefaultGameConfig()
	if *cfg != *def {
		t.Errorf("data/game.yaml differs from DefaultGameConfig()\n got: %+v\nwant: %+v", *cfg, *def)
	}
}
