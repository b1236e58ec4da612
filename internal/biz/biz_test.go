package biz

import (
	"context"
	"sync"
	"time"

	"prizewheel/internal/notify"
	"prizewheel/internal/wheel"

	"github.com/go-kratos/kratos/v2/log"
)

// scriptedRandom 按顺序返回预设值，用完后返回 0
type scriptedRandom struct {
	mu    sync.Mutex
	vals  []int
	calls int
}

func (r *scriptedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

// manualScheduler 只记录回调，由测试手动触发
type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, fn)
	s.delays = append(s.delays, d)
}

func (s *manualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *manualScheduler) FireAll() {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// recordingNotifier 记录所有消息
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []*notify.Message
}

func (n *recordingNotifier) Send(_ context.Context, msg *notify.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	return nil
}

func (n *recordingNotifier) Events(typ string) []*notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []*notify.Event
	for _, m := range n.msgs {
		if m.Event != nil && m.Event.Type == typ {
			out = append(out, m.Event)
		}
	}
	return out
}

func mustWheel(n int) *wheel.Wheel {
	ps := make([]wheel.Participant, n)
	for i := range ps {
		ps[i] = wheel.DefaultParticipants[i%len(wheel.DefaultParticipants)]
	}
	w, err := wheel.Layout(ps, wheel.Options{})
	if err != nil {
		panic(err)
	}
	return w
}

func testLogger() log.Logger {
	return log.NewFilter(log.DefaultLogger, log.FilterLevel(log.LevelError))
}
