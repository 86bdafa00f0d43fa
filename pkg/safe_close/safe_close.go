// Package safe_close 提供多组件协同关闭控制
// 任一组件出错可触发整体关闭，WaitClosed 等待所有组件退出
package safe_close

import (
	"sync"
)

// SafeClose 关闭控制器
type SafeClose struct {
	wg sync.WaitGroup

	closeOnce   sync.Once
	closeSignal chan struct{}

	mu  sync.Mutex
	err error
}

// NewSafeClose 创建关闭控制器实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach 注册一个组件运行函数并在后台启动
// f 必须在退出前调用 done，并监听 closeSignal 以响应关闭
func (sc *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	sc.wg.Add(1)
	var doneOnce sync.Once
	done := func() {
		doneOnce.Do(sc.wg.Done)
	}
	go f(done, sc.closeSignal)
}

// SendCloseSignal 发出关闭信号，首个非 nil 错误会被记录
// 可多次调用，仅第一次生效
func (sc *SafeClose) SendCloseSignal(err error) {
	sc.closeOnce.Do(func() {
		sc.mu.Lock()
		sc.err = err
		sc.mu.Unlock()
		close(sc.closeSignal)
	})
}

// CloseSignal 返回关闭信号通道
func (sc *SafeClose) CloseSignal() <-chan struct{} {
	return sc.closeSignal
}

// WaitClosed 阻塞直到关闭信号发出且所有组件退出
// 返回触发关闭的错误
func (sc *SafeClose) WaitClosed() error {
	<-sc.closeSignal
	sc.wg.Wait()

	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.err
}
