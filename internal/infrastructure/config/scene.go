package config

// SceneConfig is the root config for scenes/<name>.yaml (or .json).
// A scene is a fixed list of static obstacles, not a tile map.
type SceneConfig struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Obstacles []ObstacleConfig `json:"obstacles" yaml:"obstacles"`
}

type ObstacleConfig struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	W        float64 `json:"w" yaml:"w"`
	H        float64 `json:"h" yaml:"h"`
	Friction float64 `json:"friction" yaml:"friction"`
}
