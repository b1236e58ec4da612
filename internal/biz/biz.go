package biz

import (
	"prizewheel/internal/conf"
	"prizewheel/internal/wheel"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewWheel, NewTimerScheduler, NewController)

// NewWheel 按配置生成静态布局（参与者为编译期列表）
func NewWheel(c *conf.Wheel) (*wheel.Wheel, error) {
	return wheel.Layout(wheel.DefaultParticipants, WheelOptions(c))
}

// WheelOptions 配置转布局参数
func WheelOptions(c *conf.Wheel) wheel.Options {
	if c == nil {
		return wheel.Options{}
	}
	opts := wheel.Options{
		Radius:          c.Radius,
		FaceRadiusRatio: c.FaceRadiusRatio,
		FaceSize:        c.FaceSize,
		EvenFill:        c.EvenFill,
		OddFill:         c.OddFill,
	}
	// 未配置的坐标轴按半径取值，与布局默认圆心一致
	if c.CenterX != nil || c.CenterY != nil {
		r := c.Radius
		if r == 0 {
			r = wheel.DefaultRadius
		}
		center := wheel.Point{X: r, Y: r}
		if c.CenterX != nil {
			center.X = *c.CenterX
		}
		if c.CenterY != nil {
			center.Y = *c.CenterY
		}
		opts.Center = &center
	}
	return opts
}
