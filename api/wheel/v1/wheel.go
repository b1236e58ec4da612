package v1

// SpinRequest 触发一次旋转，无参数
type SpinRequest struct{}

func (x *SpinRequest) Validate() error { return nil }

// SpinReply 旋转结果；页面据 rotation 设置 transform，duration_ms 后结算
type SpinReply struct {
	SpinId      string  `json:"spin_id"`
	WinnerIndex int32   `json:"winner_index"`
	Winner      string  `json:"winner"`
	Rotation    float64 `json:"rotation"`
	Increment   float64 `json:"increment"`
	ExtraTurns  int32   `json:"extra_turns"`
	Pointer     float64 `json:"pointer"`
	DurationMs  int64   `json:"duration_ms"`
}

type StateRequest struct{}

func (x *StateRequest) Validate() error { return nil }

// SpinInfo 旋转摘要
type SpinInfo struct {
	Id          string  `json:"id"`
	WinnerIndex int32   `json:"winner_index"`
	Winner      string  `json:"winner"`
	Rotation    float64 `json:"rotation"`
	StartedAt   string  `json:"started_at"`
}

type StateReply struct {
	State       string    `json:"state"`
	Rotation    float64   `json:"rotation"`
	VisualAngle float64   `json:"visual_angle"`
	Pointer     float64   `json:"pointer"`
	Spins       int64     `json:"spins"`
	LastWinner  *SpinInfo `json:"last_winner,omitempty"`
	Text        string    `json:"text,omitempty"`
}

type StatsRequest struct{}

func (x *StatsRequest) Validate() error { return nil }

type StatsEntry struct {
	Index int32   `json:"index"`
	Name  string  `json:"name"`
	Wins  int64   `json:"wins"`
	Pct   float64 `json:"pct"`
}

type StatsReply struct {
	Total   int64         `json:"total"`
	Entries []*StatsEntry `json:"entries"`
}

type LayoutRequest struct{}

func (x *LayoutRequest) Validate() error { return nil }

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Segment struct {
	Index     int32   `json:"index"`
	Name      string  `json:"name"`
	ImagePath string  `json:"image_path"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Mid       float64 `json:"mid"`
	Path      string  `json:"path"`
	LargeArc  bool    `json:"large_arc"`
	Fill      string  `json:"fill"`
	Face      Point   `json:"face"`
	FaceSize  float64 `json:"face_size"`
	FaceAngle float64 `json:"face_angle"`
}

type LayoutReply struct {
	Radius   float64    `json:"radius"`
	Center   Point      `json:"center"`
	Pointer  float64    `json:"pointer"`
	Segments []*Segment `json:"segments"`
}
