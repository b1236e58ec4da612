package wheel

// Participant 转盘上的一个参与者，顺序即扇区序号（从参考方向顺时针）
type Participant struct {
	Name      string `json:"name"`
	ImagePath string `json:"image_path"`
}

// DefaultParticipants 编译期固定的参与者列表
var DefaultParticipants = []Participant{
	{Name: "Next participant", ImagePath: "images/Davo.png"},
	{Name: "Get to work", ImagePath: "images/Flash.png"},
	{Name: "Your Target", ImagePath: "images/Griffo.png"},
	{Name: "Decided", ImagePath: "images/Haysto.png"},
	{Name: "Lucky him", ImagePath: "images/Hutcho.jpeg"},
	{Name: "...and so it follows", ImagePath: "images/Risk.png"},
	{Name: "Winner Winner", ImagePath: "images/Whitey.png"},
}
