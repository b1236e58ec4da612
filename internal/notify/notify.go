package notify

import (
	"context"
	"errors"

	"prizewheel/internal/conf"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewHub, NewNotifier)

// 事件类型
const (
	EventSpinStarted = "spin_started"
	EventWinner      = "winner"
)

// Event 推送给页面的结构化事件
type Event struct {
	Type        string  `json:"type"`
	SpinID      string  `json:"spin_id"`
	WinnerIndex int     `json:"winner_index"`
	Winner      string  `json:"winner,omitempty"`
	Rotation    float64 `json:"rotation"`
	DurationMs  int64   `json:"duration_ms,omitempty"`
	Text        string  `json:"text,omitempty"`
}

// Message 通知消息；Title/Content 为空的消息只走页面推送
type Message struct {
	Title   string
	Content string
	Event   *Event
}

// Notifier 通知发送接口
type Notifier interface {
	Send(ctx context.Context, msg *Message) error
}

// Noop 空实现
type Noop struct{}

func (Noop) Send(context.Context, *Message) error { return nil }

// Multi 依次发送给所有 Notifier，汇总错误
type Multi []Notifier

func (m Multi) Send(ctx context.Context, msg *Message) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewNotifier 页面推送 + 可选飞书 webhook
func NewNotifier(c *conf.Notify, hub *Hub) Notifier {
	return Multi{hub, NewFeishu(c)}
}
