package system

import (
	"fmt"

	"github.com/younwookim/platformer/internal/domain/animation"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// LoadObstacles converts a SceneConfig into validated obstacle bodies, in
// file order. Order matters to the resolver.
func LoadObstacles(cfg *config.SceneConfig) ([]*entity.Body, error) {
	obstacles := make([]*entity.Body, 0, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		body, err := entity.NewBody(o.X, o.Y, o.W, o.H, o.Friction)
		if err != nil {
			return nil, fmt.Errorf("scene %s obstacle %d: %w", cfg.ID, i, err)
		}
		obstacles = append(obstacles, body)
	}
	return obstacles, nil
}

// LoadClips converts animation configs keyed by action name into clips.
// Actions without a config fall back to animation.DefaultClips.
func LoadClips(cfgs map[string]config.AnimationConfig) (map[entity.Action]animation.Clip, error) {
	byName := make(map[string]entity.Action, len(entity.Actions))
	for _, a := range entity.Actions {
		byName[a.String()] = a
	}

	clips := make(map[entity.Action]animation.Clip, len(entity.Actions))
	for a, clip := range animation.DefaultClips {
		clips[a] = clip
	}
	for name, c := range cfgs {
		action, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown animation %q", name)
		}
		clips[action] = animation.Clip{
			Frames:        c.Frames,
			TicksPerFrame: c.TicksPerFrame,
			Loop:          c.Loop,
		}
	}
	return clips, nil
}
