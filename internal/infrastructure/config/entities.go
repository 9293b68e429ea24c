package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
}

type PlayerConfig struct {
	ID         string                     `json:"id"`
	Size       SizeConfig                 `json:"size"`
	Spawn      PositionConfig             `json:"spawn"`
	Animations map[string]AnimationConfig `json:"animations"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AnimationConfig describes one clip, keyed by action name ("idle", "run", ...).
type AnimationConfig struct {
	Frames        int  `json:"frames"`
	TicksPerFrame int  `json:"ticksPerFrame"`
	Loop          bool `json:"loop"`
}
