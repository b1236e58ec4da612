package wheel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
)

const (
	FullTurn = 360.0

	// 角度 0 指向正上方；SVG 的 0° 在正右方，换算时统一减去 90°
	referenceOffset = -90.0
)

var (
	ErrNoParticipants = errors.BadRequest("WHEEL_NO_PARTICIPANTS", "wheel needs at least one participant")
	ErrInvalidRadius  = errors.BadRequest("WHEEL_INVALID_RADIUS", "wheel radius must be positive")
)

// Point 渲染坐标系中的点（y 轴向下）
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarToCartesian 极坐标转直角坐标，angle 为从正上方顺时针的角度
func PolarToCartesian(center Point, radius, angle float64) Point {
	rad := (angle + referenceOffset) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// CartesianToPolar PolarToCartesian 的逆运算，angle 归一化到 [0,360)
func CartesianToPolar(center Point, p Point) (angle, radius float64) {
	dx, dy := p.X-center.X, p.Y-center.Y
	radius = math.Hypot(dx, dy)
	if radius == 0 {
		return 0, 0
	}
	angle = Normalize(math.Atan2(dy, dx)*180/math.Pi - referenceOffset)
	return angle, radius
}

// Normalize 将角度归约到 [0,360)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}

// SegmentWidth 单个扇区角宽
func SegmentWidth(n int) float64 {
	return FullTurn / float64(n)
}

// SegmentBounds 第 i 个扇区的起止角度
func SegmentBounds(i, n int) (start, end float64) {
	w := SegmentWidth(n)
	return float64(i) * w, float64(i+1) * w
}

// SegmentCenter 第 i 个扇区的中心角
func SegmentCenter(i, n int) float64 {
	start, end := SegmentBounds(i, n)
	return start + (end-start)/2
}

// SegmentAt 返回覆盖给定角度的扇区序号
func SegmentAt(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(math.Floor(Normalize(angle) / SegmentWidth(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// LargeArc 弧跨度是否超过 180°（SVG A 指令需要此标志消歧）
func LargeArc(start, end float64) bool {
	return end-start > FullTurn/2
}

// DescribeArc 生成一个扇形（两条半径 + 外圆弧）的 SVG path
func DescribeArc(center Point, radius, start, end float64) string {
	if end-start >= FullTurn {
		// 单扇区整圆：A 指令起止点重合会被忽略，拆成两段半圆
		top := PolarToCartesian(center, radius, 0)
		bottom := PolarToCartesian(center, radius, FullTurn/2)
		return strings.Join([]string{
			"M", num(top.X), num(top.Y),
			"A", num(radius), num(radius), "0", "1", "1", num(bottom.X), num(bottom.Y),
			"A", num(radius), num(radius), "0", "1", "1", num(top.X), num(top.Y),
			"Z",
		}, " ")
	}
	from := PolarToCartesian(center, radius, start)
	to := PolarToCartesian(center, radius, end)
	large := "0"
	if LargeArc(start, end) {
		large = "1"
	}
	return strings.Join([]string{
		"M", num(center.X), num(center.Y),
		"L", num(from.X), num(from.Y),
		"A", num(radius), num(radius), "0", large, "1", num(to.X), num(to.Y),
		"Z",
	}, " ")
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// Face 头像摆放：中心、直径、绕自身中心的旋转角、圆形裁剪 id
type Face struct {
	Center   Point   `json:"center"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"`
	ClipID   string  `json:"clip_id"`
}

// Segment 一个扇区的完整布局
type Segment struct {
	Index       int         `json:"index"`
	Participant Participant `json:"participant"`
	Start       float64     `json:"start"`
	End         float64     `json:"end"`
	Mid         float64     `json:"mid"`
	Path        string      `json:"path"`
	LargeArc    bool        `json:"large_arc"`
	Fill        string      `json:"fill"`
	Face        Face        `json:"face"`
}

// Options 布局参数，零值字段使用默认值
type Options struct {
	Radius          float64
	Center          *Point // nil 时圆心为 (Radius, Radius)
	FaceRadiusRatio float64
	FaceSize        float64
	EvenFill        string
	OddFill         string
}

const (
	DefaultRadius          = 200.0
	DefaultFaceRadiusRatio = 0.65
	DefaultFaceSize        = 70.0
	DefaultEvenFill        = "#8E1F30"
	DefaultOddFill         = "#64121F"
)

func (o Options) withDefaults() Options {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Center == nil {
		o.Center = &Point{X: o.Radius, Y: o.Radius}
	}
	if o.FaceRadiusRatio <= 0 {
		o.FaceRadiusRatio = DefaultFaceRadiusRatio
	}
	if o.FaceSize <= 0 {
		o.FaceSize = DefaultFaceSize
	}
	if o.EvenFill == "" {
		o.EvenFill = DefaultEvenFill
	}
	if o.OddFill == "" {
		o.OddFill = DefaultOddFill
	}
	return o
}

// Wheel 静态布局结果，启动时生成一次
type Wheel struct {
	Radius   float64   `json:"radius"`
	Center   Point     `json:"center"`
	Segments []Segment `json:"segments"`
}

// Len 扇区数
func (w *Wheel) Len() int {
	return len(w.Segments)
}

// Layout 为每个参与者计算扇形与头像位置
func Layout(participants []Participant, opts Options) (*Wheel, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	opts = opts.withDefaults()
	if opts.Radius < 0 || math.IsNaN(opts.Radius) {
		return nil, ErrInvalidRadius
	}

	n := len(participants)
	w := &Wheel{
		Radius:   opts.Radius,
		Center:   *opts.Center,
		Segments: make([]Segment, n),
	}
	for i, p := range participants {
		start, end := SegmentBounds(i, n)
		mid := start + (end-start)/2
		fill := opts.EvenFill
		if i%2 == 1 {
			fill = opts.OddFill
		}
		w.Segments[i] = Segment{
			Index:       i,
			Participant: p,
			Start:       start,
			End:         end,
			Mid:         mid,
			Path:        DescribeArc(*opts.Center, opts.Radius, start, end),
			LargeArc:    LargeArc(start, end),
			Fill:        fill,
			Face: Face{
				Center:   PolarToCartesian(*opts.Center, opts.Radius*opts.FaceRadiusRatio, mid),
				Size:     opts.FaceSize,
				Rotation: mid + 90,
				ClipID:   fmt.Sprintf("clip-%d", i),
			},
		}
	}
	return w, nil
}
