package progress

// LevelCount is the fixed number of levels.
const LevelCount = 4

// Level is one entry of the level-select screen.
type Level struct {
	Name       string `json:"name"`
	Unlocked   bool   `json:"unlocked"`
	EnergyGoal int    `json:"energyGoal"`
	X          int    `json:"x"` // menu placement hint, 800x600 reference space
	Y          int    `json:"y"`
}

// DefaultLevels returns a fresh copy of the built-in level list.
func DefaultLevels() []Level {
	return []Level{
		{Name: "Level 1", Unlocked: true, EnergyGoal: 150, X: 180, Y: 460},
		{Name: "Level 2", Unlocked: false, EnergyGoal: 150, X: 385, Y: 210},
		{Name: "Level 3", Unlocked: false, EnergyGoal: 200, X: 460, Y: 495},
		{Name: "Level 4", Unlocked: false, EnergyGoal: 200, X: 650, Y: 250},
	}
}
