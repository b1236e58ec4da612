package service

import (
	"context"
	"net/http"
	"time"

	v1 "prizewheel/api/wheel/v1"
	"prizewheel/internal/biz"
	"prizewheel/internal/conf"
	"prizewheel/internal/notify"
	"prizewheel/internal/render"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewWheelService)

const defaultAssetsDir = "./images"

// WheelService 转盘接口 + 页面
type WheelService struct {
	ctrl      *biz.Controller
	gen       *render.Generator
	assetsDir string
	log       *log.Helper
}

// NewWheelService new a wheel service.
func NewWheelService(c *conf.Wheel, ctrl *biz.Controller, gen *render.Generator, logger log.Logger) *WheelService {
	s := &WheelService{
		ctrl:      ctrl,
		gen:       gen,
		assetsDir: defaultAssetsDir,
		log:       log.NewHelper(logger),
	}
	if c != nil && c.AssetsDir != "" {
		s.assetsDir = c.AssetsDir
	}
	if c != nil && c.SaveLocal {
		if res, err := gen.Generate(ctrl.Wheel(), s.pageOptions(), true); err != nil {
			s.log.Warnf("save wheel page failed: %v", err)
		} else {
			s.log.Infof("wheel page saved to %s", res.FilePath)
		}
	}
	return s
}

// Spin 触发一次旋转
func (s *WheelService) Spin(ctx context.Context, in *v1.SpinRequest) (*v1.SpinReply, error) {
	res, err := s.ctrl.Spin(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warnf("Spin rejected: %v", err)
		return nil, err
	}
	return &v1.SpinReply{
		SpinId:      res.ID,
		WinnerIndex: int32(res.WinnerIndex),
		Winner:      res.Winner,
		Rotation:    res.Rotation,
		Increment:   res.Increment,
		ExtraTurns:  int32(res.ExtraTurns),
		Pointer:     s.ctrl.Options().PointerAngle,
		DurationMs:  res.Duration.Milliseconds(),
	}, nil
}

// State 当前状态；旋转中不返回本轮结果
func (s *WheelService) State(ctx context.Context, in *v1.StateRequest) (*v1.StateReply, error) {
	snap := s.ctrl.Snapshot()
	reply := &v1.StateReply{
		State:       snap.State.String(),
		Rotation:    snap.Rotation,
		VisualAngle: snap.VisualAngle,
		Pointer:     snap.Pointer,
		Spins:       snap.Spins,
	}
	if snap.State == biz.StateSpinning {
		reply.Text = "Spinning..."
	}
	if last := snap.LastWinner; last != nil {
		reply.LastWinner = &v1.SpinInfo{
			Id:          last.ID,
			WinnerIndex: int32(last.WinnerIndex),
			Winner:      last.Winner,
			Rotation:    last.Rotation,
			StartedAt:   last.StartedAt.Format(time.RFC3339),
		}
		if snap.State == biz.StateIdle {
			reply.Text = notify.WinnerText(last.Winner)
		}
	}
	return reply, nil
}

// Stats 会话内中奖统计
func (s *WheelService) Stats(ctx context.Context, in *v1.StatsRequest) (*v1.StatsReply, error) {
	entries := s.ctrl.Tally()
	reply := &v1.StatsReply{Entries: make([]*v1.StatsEntry, len(entries))}
	for i, e := range entries {
		reply.Total += e.Wins
		reply.Entries[i] = &v1.StatsEntry{Index: int32(e.Index), Name: e.Name, Wins: e.Wins, Pct: e.Pct}
	}
	return reply, nil
}

// Layout 扇区几何
func (s *WheelService) Layout(ctx context.Context, in *v1.LayoutRequest) (*v1.LayoutReply, error) {
	w := s.ctrl.Wheel()
	reply := &v1.LayoutReply{
		Radius:   w.Radius,
		Center:   v1.Point{X: w.Center.X, Y: w.Center.Y},
		Pointer:  s.ctrl.Options().PointerAngle,
		Segments: make([]*v1.Segment, 0, w.Len()),
	}
	for _, seg := range w.Segments {
		reply.Segments = append(reply.Segments, &v1.Segment{
			Index:     int32(seg.Index),
			Name:      seg.Participant.Name,
			ImagePath: seg.Participant.ImagePath,
			Start:     seg.Start,
			End:       seg.End,
			Mid:       seg.Mid,
			Path:      seg.Path,
			LargeArc:  seg.LargeArc,
			Fill:      seg.Fill,
			Face:      v1.Point{X: seg.Face.Center.X, Y: seg.Face.Center.Y},
			FaceSize:  seg.Face.Size,
			FaceAngle: seg.Face.Rotation,
		})
	}
	return reply, nil
}

func (s *WheelService) pageOptions() render.PageOptions {
	opts := s.ctrl.Options()
	return render.PageOptions{
		Pointer:  opts.PointerAngle,
		Rotation: s.ctrl.Rotation(),
		Duration: opts.SpinDuration,
	}
}

// Index 页面，带上当前累计旋转，刷新后转盘停在原位
func (s *WheelService) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := s.gen.Page(s.ctrl.Wheel(), s.pageOptions())
	if err != nil {
		s.log.Errorf("render page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// SVG 单独的转盘矢量图
func (s *WheelService) SVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(s.gen.SVG(s.ctrl.Wheel())))
}

// Assets 头像等静态资源，缺失时页面显示占位图，不影响抽奖
func (s *WheelService) Assets() http.Handler {
	return http.StripPrefix("/images/", http.FileServer(http.Dir(s.assetsDir)))
}
