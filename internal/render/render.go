package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"prizewheel/internal/conf"
	"prizewheel/internal/wheel"

	"github.com/google/wire"
	jsoniter "github.com/json-iterator/go"
)

var ProviderSet = wire.NewSet(NewGenerator)

const DefaultOutputDir = "./wheel_out"

// PageOptions 页面运行参数
type PageOptions struct {
	Title    string
	Pointer  float64       // 指针角度，从正上方顺时针
	Rotation float64       // 页面加载时的累计旋转
	Duration time.Duration // 过渡动画时长
	SpinURL  string
	StateURL string
	WSPath   string
}

func (o PageOptions) withDefaults() PageOptions {
	if o.Title == "" {
		o.Title = "Prize Wheel"
	}
	if o.Duration <= 0 {
		o.Duration = 4 * time.Second
	}
	if o.SpinURL == "" {
		o.SpinURL = "/api/wheel/spin"
	}
	if o.StateURL == "" {
		o.StateURL = "/api/wheel/state"
	}
	if o.WSPath == "" {
		o.WSPath = "/ws"
	}
	return o
}

// Result 生成结果
type Result struct {
	SVG      string
	HTML     string
	FilePath string // 未保存本地时为空
}

// Generator 转盘 SVG / 页面生成器
type Generator struct {
	outputDir string
}

// NewGenerator 创建生成器
func NewGenerator(c *conf.Wheel) *Generator {
	dir := DefaultOutputDir
	if c != nil && c.OutputDir != "" {
		dir = c.OutputDir
	}
	return &Generator{outputDir: dir}
}

// SVG 生成转盘 SVG：裁剪圆、扇形、头像、外圈
func (g *Generator) SVG(w *wheel.Wheel) string {
	// 视口以转盘圆心为中点，页面 rotate() 绕容器中心旋转即绕圆心旋转
	side := 2 * w.Radius

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" id="wheelSVG" viewBox="%s %s %s %s">`,
		f(w.Center.X-w.Radius), f(w.Center.Y-w.Radius), f(side), f(side))
	b.WriteString("<defs>")
	for _, s := range w.Segments {
		fmt.Fprintf(&b, `<clipPath id="%s"><circle cx="%s" cy="%s" r="%s"/></clipPath>`,
			s.Face.ClipID, f(s.Face.Center.X), f(s.Face.Center.Y), f(s.Face.Size/2))
	}
	b.WriteString("</defs>")
	for _, s := range w.Segments {
		half := s.Face.Size / 2
		fmt.Fprintf(&b, `<g class="segment" data-index="%d" data-name="%s">`, s.Index, html.EscapeString(s.Participant.Name))
		fmt.Fprintf(&b, `<path class="svg-segment" d="%s" fill="%s"/>`, s.Path, html.EscapeString(s.Fill))
		fmt.Fprintf(&b, `<image href="%s" x="%s" y="%s" width="%s" height="%s" transform="rotate(%s, %s, %s)" clip-path="url(#%s)"/>`,
			html.EscapeString(s.Participant.ImagePath),
			f(s.Face.Center.X-half), f(s.Face.Center.Y-half), f(s.Face.Size), f(s.Face.Size),
			f(s.Face.Rotation), f(s.Face.Center.X), f(s.Face.Center.Y), s.Face.ClipID)
		b.WriteString("</g>")
	}
	fmt.Fprintf(&b, `<circle class="rim" cx="%s" cy="%s" r="%s" fill="none" stroke="#D4AF37" stroke-width="4"/>`,
		f(w.Center.X), f(w.Center.Y), f(w.Radius-2))
	b.WriteString("</svg>")
	return b.String()
}

// Page 生成完整 HTML 页面
func (g *Generator) Page(w *wheel.Wheel, opts PageOptions) (string, error) {
	opts = opts.withDefaults()
	cfg, err := jsoniter.Marshal(map[string]any{
		"spinUrl":    opts.SpinURL,
		"stateUrl":   opts.StateURL,
		"wsPath":     opts.WSPath,
		"durationMs": opts.Duration.Milliseconds(),
		"rotation":   opts.Rotation,
	})
	if err != nil {
		return "", fmt.Errorf("marshal page config: %w", err)
	}
	title := html.EscapeString(opts.Title)
	secs := opts.Duration.Seconds()
	return fmt.Sprintf(pageTpl, title, f(secs), f(opts.Rotation), f(opts.Pointer), title, g.SVG(w), string(cfg)), nil
}

// Generate 生成 SVG 与页面；saveLocal 为 true 时写入输出目录
func (g *Generator) Generate(w *wheel.Wheel, opts PageOptions, saveLocal bool) (*Result, error) {
	if w == nil || w.Len() == 0 {
		return nil, wheel.ErrNoParticipants
	}
	page, err := g.Page(w, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{SVG: g.SVG(w), HTML: page}
	if !saveLocal {
		return result, nil
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.outputDir, "wheel.svg"), []byte(result.SVG), 0644); err != nil {
		return nil, err
	}
	path := filepath.Join(g.outputDir, "wheel.html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return nil, err
	}
	result.FilePath = path
	return result, nil
}

func f(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
