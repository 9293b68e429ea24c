package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/platformer/internal/application/controller"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// replaySummary describes a finished headless replay.
type replaySummary struct {
	Frames      int
	Checkpoints int
	Final       entity.Body
	Action      entity.Action
}

func (s replaySummary) String() string {
	return fmt.Sprintf("%d frames, %d checkpoints, final x=%.2f y=%.2f action=%s",
		s.Frames, s.Checkpoints, s.Final.X, s.Final.Y, s.Action)
}

// runReplay loads the recording at path and the scene it was made in, then
// plays it through a fresh controller.
func runReplay(loader *config.Loader, cfg *config.GameConfig, path string, logger *slog.Logger) (replaySummary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replaySummary{}, err
	}

	sceneCfg, err := loader.LoadScene(data.Scene)
	if err != nil {
		return replaySummary{}, err
	}
	obstacles, err := system.LoadObstacles(sceneCfg)
	if err != nil {
		return replaySummary{}, err
	}

	ctrl, err := playing.NewController(cfg, nil, logger)
	if err != nil {
		return replaySummary{}, err
	}

	return playBack(ctrl, obstacles, replay.NewReplayer(*data))
}

// playBack feeds every recorded frame to ctrl and checks each checkpoint.
// A recorded quit ends playback early.
func playBack(ctrl *controller.PlayerController, obstacles []*entity.Body, r *replay.Replayer) (replaySummary, error) {
	summary := replaySummary{Checkpoints: r.Checkpoints()}
	for {
		input, dt, ok := r.GetInput()
		if !ok {
			break
		}
		frame := r.CurrentFrame() - 1

		if quit := ctrl.ApplyInput(input, dt); quit {
			break
		}
		if err := ctrl.Update(dt, obstacles); err != nil {
			return summary, fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := r.Verify(frame, ctrl.Body(), ctrl.Action()); err != nil {
			return summary, err
		}
		summary.Frames++
	}

	summary.Final = ctrl.Body()
	summary.Action = ctrl.Action()
	return summary, nil
}
