package biz

import (
	"context"
	"strconv"
	"sync"
	"time"

	"prizewheel/internal/conf"
	"prizewheel/internal/notify"
	"prizewheel/internal/wheel"
	"prizewheel/pkg/xgo"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const (
	defaultSpinDuration = 4 * time.Second
	defaultMinTurns     = 4
	defaultMaxTurns     = 6
	announceTimeout     = 10 * time.Second
)

var ErrSpinInProgress = errors.Conflict("WHEEL_SPIN_IN_PROGRESS", "wheel is already spinning")

// State 控制器状态
type State int32

const (
	StateIdle State = iota
	StateSpinning
)

func (s State) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// SpinResult 一次旋转的决定结果（动画开始时即确定）
type SpinResult struct {
	ID           string        `json:"id"`
	WinnerIndex  int           `json:"winner_index"`
	Winner       string        `json:"winner"`
	SegmentAngle float64       `json:"segment_angle"`
	Increment    float64       `json:"increment"`
	ExtraTurns   int           `json:"extra_turns"`
	Rotation     float64       `json:"rotation"`
	Duration     time.Duration `json:"duration"`
	StartedAt    time.Time     `json:"started_at"`
}

// Snapshot 控制器状态快照
type Snapshot struct {
	State       State       `json:"state"`
	Rotation    float64     `json:"rotation"`
	VisualAngle float64     `json:"visual_angle"`
	Pointer     float64     `json:"pointer"`
	Spins       int64       `json:"spins"`
	Current     *SpinResult `json:"current,omitempty"`
	LastWinner  *SpinResult `json:"last_winner,omitempty"`
}

// ControllerOptions 旋转参数，零值使用默认
type ControllerOptions struct {
	PointerAngle float64
	SpinDuration time.Duration
	MinTurns     int
	MaxTurns     int
}

func (o ControllerOptions) withDefaults() ControllerOptions {
	if o.SpinDuration <= 0 {
		o.SpinDuration = defaultSpinDuration
	}
	if o.MinTurns <= 0 {
		o.MinTurns = defaultMinTurns
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = max(defaultMaxTurns, o.MinTurns)
	}
	if o.MaxTurns < o.MinTurns {
		o.MaxTurns = o.MinTurns
	}
	o.PointerAngle = wheel.Normalize(o.PointerAngle)
	return o
}

// Controller 旋转控制器：持有参与者、累计旋转与 Idle/Spinning 状态机
//
// 累计旋转只增不减、从不取模；比较视觉位置时一律先归约到 [0,360)。
// 状态机是防重入的唯一依据：Spinning 期间的触发不抽奖也不排定时器。
type Controller struct {
	mu       sync.Mutex
	wheel    *wheel.Wheel
	opts     ControllerOptions
	rnd      Random
	sched    Scheduler
	notifier notify.Notifier
	tally    *Tally
	log      *log.Helper

	state    State
	rotation float64
	spins    int64
	current  *SpinResult
	last     *SpinResult
}

// NewController 由配置创建控制器
func NewController(c *conf.Wheel, w *wheel.Wheel, sched Scheduler, n notify.Notifier, logger log.Logger) *Controller {
	opts := ControllerOptions{}
	var seed uint64
	if c != nil {
		opts = ControllerOptions{
			PointerAngle: c.PointerAngle,
			SpinDuration: c.SpinDuration.AsDuration(),
			MinTurns:     int(c.MinTurns),
			MaxTurns:     int(c.MaxTurns),
		}
		seed = c.Seed
	}
	return NewControllerWithOptions(w, opts, NewRandom(seed), sched, n, logger)
}

// NewControllerWithOptions 指定随机源与参数创建控制器
func NewControllerWithOptions(w *wheel.Wheel, opts ControllerOptions, rnd Random, sched Scheduler, n notify.Notifier, logger log.Logger) *Controller {
	if n == nil {
		n = notify.Noop{}
	}
	participants := make([]wheel.Participant, w.Len())
	for i, s := range w.Segments {
		participants[i] = s.Participant
	}
	return &Controller{
		wheel:    w,
		opts:     opts.withDefaults(),
		rnd:      rnd,
		sched:    sched,
		notifier: n,
		tally:    NewTally(participants),
		log:      log.NewHelper(logger),
	}
}

// Wheel 静态布局
func (c *Controller) Wheel() *wheel.Wheel {
	return c.wheel
}

// Options 生效的旋转参数
func (c *Controller) Options() ControllerOptions {
	return c.opts
}

// Spin Idle -> Spinning：抽取中奖者、计算最终旋转并排定结算回调
func (c *Controller) Spin(ctx context.Context) (*SpinResult, error) {
	c.mu.Lock()
	if c.state == StateSpinning {
		c.mu.Unlock()
		reportRejected()
		return nil, ErrSpinInProgress
	}
	c.state = StateSpinning

	n := c.wheel.Len()
	winner := c.rnd.IntN(n)
	turns := c.opts.MinTurns + c.rnd.IntN(c.opts.MaxTurns-c.opts.MinTurns+1)
	center := wheel.SegmentCenter(winner, n)
	inc := Alignment(c.opts.PointerAngle, center, c.rotation)
	c.rotation += float64(turns)*wheel.FullTurn + inc
	c.spins++

	res := &SpinResult{
		ID:           uuid.NewString(),
		WinnerIndex:  winner,
		Winner:       c.wheel.Segments[winner].Participant.Name,
		SegmentAngle: center,
		Increment:    inc,
		ExtraTurns:   turns,
		Rotation:     c.rotation,
		Duration:     c.opts.SpinDuration,
		StartedAt:    time.Now(),
	}
	c.current = res
	c.mu.Unlock()

	reportSpinStart(res.Rotation)
	c.log.WithContext(ctx).Infof("spin %s started: winner=%d(%s) turns=%d increment=%.3f rotation=%.3f duration=%s",
		res.ID, winner, res.Winner, turns, inc, res.Rotation, xgo.ShortDuration(res.Duration))

	if err := c.notifier.Send(ctx, notify.BuildSpinStartedMessage(res.ID, res.Rotation, res.Duration)); err != nil {
		c.log.WithContext(ctx).Warnf("announce spin start: %v", err)
	}
	c.sched.AfterFunc(res.Duration, func() { c.settle(res) })
	return res, nil
}

// settle Spinning -> Idle：恢复可触发并播报中奖者
func (c *Controller) settle(res *SpinResult) {
	c.mu.Lock()
	if c.state != StateSpinning || c.current != res {
		c.mu.Unlock()
		c.log.Warnf("spin %s settled out of order, ignored", res.ID)
		return
	}
	c.state = StateIdle
	c.current = nil
	c.last = res
	c.tally.Record(res.WinnerIndex)
	spins := c.spins
	c.mu.Unlock()

	reportSettled(res.Winner)
	c.log.Infof("spin %s settled: %s", res.ID, notify.WinnerText(res.Winner))
	c.log.Debugf("tally: %s", xgo.ToJSON(c.tally.Entries()))

	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()
	if err := c.notifier.Send(ctx, notify.BuildWinnerMessage(res.ID, res.WinnerIndex, res.Winner, res.Rotation, spins)); err != nil {
		c.log.Warnf("announce winner: %v", err)
	}
}

// State 当前状态
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Rotation 累计旋转角度
func (c *Controller) Rotation() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

// Snapshot 状态快照
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:       c.state,
		Rotation:    c.rotation,
		VisualAngle: wheel.Normalize(c.rotation),
		Pointer:     c.opts.PointerAngle,
		Spins:       c.spins,
		Current:     c.current,
		LastWinner:  c.last,
	}
}

// Tally 会话内中奖统计
func (c *Controller) Tally() []TallyEntry {
	return c.tally.Entries()
}
