package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"prizewheel/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

type recorder struct {
	mu   sync.Mutex
	msgs []*Message
	err  error
}

func (r *recorder) Send(_ context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestBuildWinnerMessage(t *testing.T) {
	msg := BuildWinnerMessage("abc", 3, "Decided", 1980, 2)
	if msg.Title != "Winner: Decided!" {
		t.Fatalf("title = %q", msg.Title)
	}
	if !strings.Contains(msg.Content, "Decided") || !strings.Contains(msg.Content, "1980.00") {
		t.Fatalf("content = %q", msg.Content)
	}
	ev := msg.Event
	if ev == nil || ev.Type != EventWinner || ev.SpinID != "abc" || ev.WinnerIndex != 3 || ev.Text != msg.Title {
		t.Fatalf("event = %+v", ev)
	}
}

func TestBuildSpinStartedMessage(t *testing.T) {
	msg := BuildSpinStartedMessage("abc", 1980, 4*time.Second)
	if msg.Title != "" || msg.Content != "" {
		t.Fatalf("spin started should carry no text notification: %+v", msg)
	}
	if msg.Event.Type != EventSpinStarted || msg.Event.DurationMs != 4000 || msg.Event.WinnerIndex != -1 {
		t.Fatalf("event = %+v", msg.Event)
	}
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{err: errors.New("boom")}
	m := Multi{a, nil, b}
	err := m.Send(context.Background(), &Message{Title: "t"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	if len(a.msgs) != 1 || len(b.msgs) != 1 {
		t.Fatalf("fan out: a=%d b=%d", len(a.msgs), len(b.msgs))
	}
}

func TestNewFeishuDisabled(t *testing.T) {
	cases := []*conf.Notify{
		nil,
		{Enabled: false, WebhookUrl: "http://x"},
		{Enabled: true, WebhookUrl: "  "},
	}
	for i, c := range cases {
		if _, ok := NewFeishu(c).(Noop); !ok {
			t.Errorf("case %d: want Noop", i)
		}
	}
}

func TestFeishuSend(t *testing.T) {
	var (
		mu   sync.Mutex
		body map[string]any
		hits int
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		hits++
		_ = jsoniter.Unmarshal(data, &body)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"code":0,"msg":"ok"}`))
	}))
	defer ts.Close()

	n := NewFeishu(&conf.Notify{Enabled: true, WebhookUrl: ts.URL, SigningSecret: "s", Prefix: "[wheel]"})
	f, ok := n.(*Feishu)
	if !ok {
		t.Fatalf("want *Feishu, got %T", n)
	}

	// 只有页面事件的消息不发 webhook
	if err := f.Send(context.Background(), BuildSpinStartedMessage("x", 0, time.Second)); err != nil {
		t.Fatalf("send started: %v", err)
	}
	if err := f.Send(context.Background(), BuildWinnerMessage("x", 1, "Get to work", 720, 1)); err != nil {
		t.Fatalf("send winner: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if body["sign"] == nil || body["timestamp"] == nil {
		t.Fatalf("signed payload missing sign: %v", body)
	}
	card, _ := body["card"].(map[string]any)
	header, _ := card["header"].(map[string]any)
	title, _ := header["title"].(map[string]any)
	if title["content"] != "[wheel] Winner: Get to work!" {
		t.Fatalf("title = %v", title["content"])
	}
}

func TestFeishuErrorCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":19021,"msg":"sign match fail"}`))
	}))
	defer ts.Close()

	f := &Feishu{WebhookURL: ts.URL}
	err := f.Send(context.Background(), &Message{Title: "t", Content: "c"})
	if err == nil || !strings.Contains(err.Error(), "19021") {
		t.Fatalf("err = %v", err)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub, cleanup := NewHub(log.NewFilter(log.DefaultLogger, log.FilterLevel(log.LevelError)))
	defer cleanup()
	ts := httptest.NewServer(hub)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conns := make([]*websocket.Conn, 2)
	for i := range conns {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer conn.Close()
		conns[i] = conn
	}
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d", hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}

	// 无事件的消息不推送
	if err := hub.Send(context.Background(), &Message{Title: "only webhook"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := hub.Send(context.Background(), BuildWinnerMessage("id", 6, "Winner Winner", 360, 1)); err != nil {
		t.Fatalf("send: %v", err)
	}
	for i, conn := range conns {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("conn %d read: %v", i, err)
		}
		var ev Event
		if err := jsoniter.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if ev.Type != EventWinner || ev.Winner != "Winner Winner" || ev.WinnerIndex != 6 {
			t.Fatalf("conn %d event = %s", i, data)
		}
	}

	_ = conns[0].Close()
	deadline = time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("closed client not removed, clients = %d", hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
