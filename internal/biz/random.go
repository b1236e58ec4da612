package biz

import (
	"math/rand/v2"
	"time"
)

// Random 均匀随机源，测试中替换为固定序列
type Random interface {
	IntN(n int) int
}

// NewRandom seed 为 0 时使用时间种子
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
