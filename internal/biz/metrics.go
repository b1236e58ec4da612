package biz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelParticipant = "participant"

// 指标名规范：wheel_<name>
var (
	mSpins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wheel_spins_total",
		Help: "已开始的旋转次数",
	})
	mRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wheel_spins_rejected_total",
		Help: "旋转中再次触发被拒绝的次数",
	})
	mWins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_wins_total",
		Help: "各参与者中奖次数",
	}, []string{labelParticipant})
	mRotation = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wheel_rotation_degrees",
		Help: "累计旋转角度",
	})
	mSpinning = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wheel_spinning",
		Help: "是否正在旋转(0/1)",
	})
)

func reportSpinStart(rotation float64) {
	mSpins.Inc()
	mRotation.Set(rotation)
	mSpinning.Set(1)
}

func reportSettled(winner string) {
	mWins.With(prometheus.Labels{labelParticipant: winner}).Inc()
	mSpinning.Set(0)
}

func reportRejected() {
	mRejected.Inc()
}
