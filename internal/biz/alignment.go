package biz

import (
	"math"

	"prizewheel/internal/wheel"
)

// Alignment 计算对齐增量：使中心角为 segCenter 的扇区在累计旋转 current 之上
// 再转过增量后停在 pointer，结果在 [0,360)，与 current 的整圈数无关
func Alignment(pointer, segCenter, current float64) float64 {
	return wheel.Normalize(pointer - segCenter - wheel.Normalize(current))
}

// AngularDistance 两个角度在圆上的最短距离，范围 [0,180]
func AngularDistance(a, b float64) float64 {
	d := math.Abs(wheel.Normalize(a) - wheel.Normalize(b))
	if d > wheel.FullTurn/2 {
		d = wheel.FullTurn - d
	}
	return d
}

// PointerSegment 给定累计旋转，返回当前停在指针下的扇区
func PointerSegment(pointer, rotation float64, n int) int {
	// 扇区 θ 旋转 R 后位于 θ+R，指针下的原始角度为 pointer-R
	return wheel.SegmentAt(pointer-rotation, n)
}
