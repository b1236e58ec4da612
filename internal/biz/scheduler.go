package biz

import (
	"fmt"
	"time"

	"prizewheel/internal/conf"
	"prizewheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
)

const defaultCallbackWorkers = 4

// Scheduler 延时回调抽象：一次性触发，不可取消
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler 基于 clockwork 计时，到期后把回调投递到 ants 协程池执行
type TimerScheduler struct {
	clock clockwork.Clock
	pool  *ants.Pool
	log   *log.Helper
}

// NewTimerScheduler 创建调度器（真实时钟）
func NewTimerScheduler(c *conf.Wheel, logger log.Logger) (Scheduler, func(), error) {
	workers := defaultCallbackWorkers
	if c != nil && c.CallbackWorkers > 0 {
		workers = int(c.CallbackWorkers)
	}
	s, err := NewTimerSchedulerWithClock(clockwork.NewRealClock(), workers, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, s.Release, nil
}

// NewTimerSchedulerWithClock 指定时钟创建调度器，测试中传入 FakeClock
func NewTimerSchedulerWithClock(clock clockwork.Clock, workers int, logger log.Logger) (*TimerScheduler, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create ants pool: %w", err)
	}
	return &TimerScheduler{
		clock: clock,
		pool:  pool,
		log:   log.NewHelper(logger),
	}, nil
}

// AfterFunc d 之后执行 fn；协程池已释放或提交失败时在计时协程内直接执行，保证回调必达
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	timer := s.clock.NewTimer(d)
	go func() {
		<-timer.Chan()
		run := func() {
			defer xgo.RecoverFromError(nil)
			fn()
		}
		if err := s.pool.Submit(run); err != nil {
			s.log.Warnf("submit callback to pool failed, running inline: %v", err)
			run()
		}
	}()
}

// Release 释放协程池
func (s *TimerScheduler) Release() {
	s.pool.Release()
	s.log.Info("closing timer scheduler")
}
