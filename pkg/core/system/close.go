package system

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var (
	closes = []func(ctx context.Context){}
	mu     = sync.Mutex{}
)

// RegisterClose 注册退出时执行的关闭函数，后注册的先执行
func RegisterClose(f func(ctx context.Context)) {
	mu.Lock()
	defer mu.Unlock()

	closes = append(closes, f)
}

// WaitSignal 阻塞到收到退出信号，然后在 timeout 内执行所有关闭函数
func WaitSignal(timeout time.Duration) os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(ch)

	sig := <-ch
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	CloseAll(ctx)
	return sig
}

// CloseAll 按注册的逆序执行并清空关闭函数
func CloseAll(ctx context.Context) {
	mu.Lock()
	fs := closes
	closes = []func(ctx context.Context){}
	mu.Unlock()

	for i := len(fs) - 1; i >= 0; i-- {
		fs[i](ctx)
	}
}
