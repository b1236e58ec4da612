package conf

import "prizewheel/pkg/xgo"

// Bootstrap 配置根节点，对应 configs/config.yaml
type Bootstrap struct {
	Server *Server `json:"server"`
	Log    *Log    `json:"log"`
	Wheel  *Wheel  `json:"wheel"`
	Notify *Notify `json:"notify"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string       `json:"network"`
	Addr    string       `json:"addr"`
	Timeout xgo.Duration `json:"timeout"`
}

type Log struct {
	Mode  string `json:"mode"`
	Level string `json:"level"`
	App   string `json:"app"`
	Dir   string `json:"dir"`
	File  bool   `json:"file"`
}

// Wheel 转盘几何与动画参数（参与者列表编译期固定，不在此配置）
type Wheel struct {
	Radius          float64      `json:"radius"`
	CenterX         *float64     `json:"center_x"`
	CenterY         *float64     `json:"center_y"`
	FaceRadiusRatio float64      `json:"face_radius_ratio"`
	FaceSize        float64      `json:"face_size"`
	EvenFill        string       `json:"even_fill"`
	OddFill         string       `json:"odd_fill"`
	PointerAngle    float64      `json:"pointer_angle"`
	SpinDuration    xgo.Duration `json:"spin_duration"`
	MinTurns        int32        `json:"min_turns"`
	MaxTurns        int32        `json:"max_turns"`
	Seed            uint64       `json:"seed"`
	CallbackWorkers int32        `json:"callback_workers"`
	AssetsDir       string       `json:"assets_dir"`
	OutputDir       string       `json:"output_dir"`
	SaveLocal       bool         `json:"save_local"`
}

type Notify struct {
	Enabled       bool   `json:"enabled"`
	WebhookUrl    string `json:"webhook_url"`
	SigningSecret string `json:"signing_secret"`
	Prefix        string `json:"prefix"`
}

func (x *Notify) GetWebhookUrl() string {
	if x == nil {
		return ""
	}
	return x.WebhookUrl
}

func (x *Notify) GetSigningSecret() string {
	if x == nil {
		return ""
	}
	return x.SigningSecret
}

func (x *Notify) GetPrefix() string {
	if x == nil {
		return ""
	}
	return x.Prefix
}
