package components

// FlashEffectComponent 受击闪烁倒计时
//
// 受击时设置 Timer，每帧在实体 Update 中递减，表现层只读取 Active()。
// 不使用延迟回调，保证逐帧推进的确定性。
type FlashEffectComponent struct {
	Timer float64 // 剩余闪烁时间（秒）
}

// Trigger 开始一次闪烁
func (f *FlashEffectComponent) Trigger(duration float64) {
	f.Timer = duration
}

// Tick 推进闪烁倒计时
func (f *FlashEffectComponent) Tick(dt float64) {
	if f.Timer > 0 {
		f.Timer -= dt
		if f.Timer < 0 {
			f.Timer = 0
		}
	}
}

// Active 当前是否处于闪烁状态
func (f FlashEffectComponent) Active() bool {
	return f.Timer > 0
}
