// Package event 提供模拟核心向宿主（渲染层、HUD）发布事件的同步分发器
//
// 事件在模拟步进内同步分发，监听者不得阻塞，也不应修改模拟状态。
package event

// EventType 事件类型
type EventType string

// Event 事件
type Event struct {
	Type EventType
	Data interface{} // 事件数据，类型由 EventType 决定
}

// Listener 事件监听者
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数适配器
type ListenerFunc func(event Event)

// OnEvent 调用函数本身
func (f ListenerFunc) OnEvent(event Event) { f(event) }

// SubscriptionID 订阅标识，用于取消订阅
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher 事件分发器
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    SubscriptionID
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe 订阅事件，返回的 ID 用于取消订阅
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeFunc 以函数形式订阅事件
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) SubscriptionID {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe 取消订阅
func (d *Dispatcher) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch 把事件发送给所有订阅者
// nil 分发器上调用是安全的
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
