package biz

import (
	"sync"

	"prizewheel/internal/wheel"
	"prizewheel/pkg/xgo"
)

// TallyEntry 单个参与者在本次会话中的中奖统计
type TallyEntry struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Wins  int64   `json:"wins"`
	Pct   float64 `json:"pct"`
}

// Tally 会话内中奖计数，不落库
type Tally struct {
	mu    sync.RWMutex
	names []string
	wins  []int64
	total int64
}

func NewTally(participants []wheel.Participant) *Tally {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return &Tally{names: names, wins: make([]int64, len(participants))}
}

// Record 记一次中奖
func (t *Tally) Record(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.wins) {
		return
	}
	t.wins[index]++
	t.total++
}

// Total 已结算的总次数
func (t *Tally) Total() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.total
}

// Entries 按扇区顺序返回统计副本
func (t *Tally) Entries() []TallyEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]TallyEntry, len(t.wins))
	for i := range t.wins {
		out[i] = TallyEntry{Index: i, Name: t.names[i], Wins: t.wins[i], Pct: xgo.Pct(t.wins[i], t.total)}
	}
	return out
}
