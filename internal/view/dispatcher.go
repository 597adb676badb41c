package view

import (
	"sync"

	"go.uber.org/zap"
)

// Dispatcher 唯一的消息入口，持有当前状态
type Dispatcher struct {
	mu       sync.Mutex
	state    State
	logger   *zap.Logger
	observer func(Msg)
}

// NewDispatcher 创建分发器
func NewDispatcher(initial State, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{state: initial.clone(), logger: logger}
}

// OnDispatch 注册分发回调（用于计数）
func (d *Dispatcher) OnDispatch(fn func(Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observer = fn
}

// State 当前状态（副本）
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// Dispatch 应用消息并返回新状态
func (d *Dispatcher) Dispatch(msg Msg) State {
	d.mu.Lock()
	prev := d.state.Tab
	d.state = Reduce(d.state, msg)
	next := d.state.clone()
	observer := d.observer
	d.mu.Unlock()

	d.logger.Debug("view message dispatched",
		zap.String("type", msg.Type()),
		zap.String("from_tab", string(prev)),
		zap.String("tab", string(next.Tab)))
	if observer != nil {
		observer(msg)
	}
	return next
}
