package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"prizewheel/internal/conf"

	jsoniter "github.com/json-iterator/go"
)

type Feishu struct {
	WebhookURL    string
	SigningSecret string
	Prefix        string
	Client        *http.Client
}

func NewFeishu(c *conf.Notify) Notifier {
	if c == nil || !c.Enabled || strings.TrimSpace(c.GetWebhookUrl()) == "" {
		return Noop{}
	}
	return &Feishu{
		WebhookURL:    strings.TrimSpace(c.GetWebhookUrl()),
		SigningSecret: strings.TrimSpace(c.GetSigningSecret()),
		Prefix:        strings.TrimSpace(c.GetPrefix()),
		Client:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *Feishu) Send(ctx context.Context, msg *Message) error {
	if f.WebhookURL == "" || msg == nil || (msg.Title == "" && msg.Content == "") {
		return nil
	}

	content := msg.Content
	if content == "" {
		content = msg.Title
	}
	title := msg.Title
	if title == "" {
		title = "通知"
	}
	if p := strings.TrimSpace(f.Prefix); p != "" {
		title = p + " " + title
	}

	payload := map[string]any{
		"msg_type": "interactive",
		"card": map[string]any{
			"config":   map[string]bool{"wide_screen_mode": true},
			"header":   map[string]any{"title": map[string]string{"tag": "plain_text", "content": title}, "template": "red"},
			"elements": []map[string]any{{"tag": "div", "text": map[string]string{"tag": "lark_md", "content": content}}},
		},
	}
	if f.SigningSecret != "" {
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		payload["timestamp"] = ts
		payload["sign"] = f.sign(ts)
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("feishu: marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("feishu: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feishu: status %d", resp.StatusCode)
	}
	var r struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	_ = jsoniter.NewDecoder(resp.Body).Decode(&r)
	if r.Code != 0 {
		return fmt.Errorf("feishu: code=%d msg=%s", r.Code, r.Msg)
	}
	return nil
}

// sign 飞书加签：HMAC-SHA256(key=timestamp+\n+secret, message="")
func (f *Feishu) sign(ts string) string {
	key := ts + "\n" + f.SigningSecret
	h := hmac.New(sha256.New, []byte(key))
	h.Write(nil)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// WinnerText 页面与通知共用的中奖播报文案
func WinnerText(name string) string {
	return fmt.Sprintf("Winner: %s!", name)
}

// BuildWinnerMessage 构建中奖通知，同时携带页面事件
func BuildWinnerMessage(spinID string, index int, name string, rotation float64, spins int64) *Message {
	lines := []string{
		fmt.Sprintf("**中奖者**：%s", name),
		fmt.Sprintf("**扇区**：%d", index),
		fmt.Sprintf("**累计旋转**：%.2f°", rotation),
		fmt.Sprintf("**本场次数**：%d", spins),
		fmt.Sprintf("**Spin**：%s", spinID),
	}
	return &Message{
		Title:   WinnerText(name),
		Content: strings.Join(lines, "\n"),
		Event: &Event{
			Type:        EventWinner,
			SpinID:      spinID,
			WinnerIndex: index,
			Winner:      name,
			Rotation:    rotation,
			Text:        WinnerText(name),
		},
	}
}

// BuildSpinStartedMessage 开始旋转事件，仅推送页面
func BuildSpinStartedMessage(spinID string, rotation float64, duration time.Duration) *Message {
	return &Message{
		Event: &Event{
			Type:        EventSpinStarted,
			SpinID:      spinID,
			WinnerIndex: -1,
			Rotation:    rotation,
			DurationMs:  duration.Milliseconds(),
			Text:        "Spinning...",
		},
	}
}
