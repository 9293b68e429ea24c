package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Resolution summarizes one pass of the collision resolver.
type Resolution struct {
	Candidates  int    // obstacles inside the proximity window
	Collisions  int    // candidates that overlapped the player
	Hits        [4]int // collisions per entity.Direction
	AirFriction int    // times air friction was applied
	Grounded    bool   // the pass re-enabled jumping
}

// HitsOn returns the number of collisions resolved on the given side.
func (r Resolution) HitsOn(dir entity.Direction) int {
	if dir < 0 || int(dir) >= len(r.Hits) {
		return 0
	}
	return r.Hits[dir]
}

// CollisionResolver corrects the player's velocity against static obstacles.
type CollisionResolver struct {
	config *config.PhysicsConfig
}

// NewCollisionResolver creates a new collision resolver
func NewCollisionResolver(cfg *config.PhysicsConfig) *CollisionResolver {
	return &CollisionResolver{config: cfg}
}

// Resolve scans obstacles in order and applies the response for each
// candidate inside the proximity window. Obstacles are never modified.
//
// Responses accumulate in list order and the last write wins on shared
// velocity fields. Air friction is applied once per non-colliding candidate,
// or once if no obstacle is in range at all.
func (r *CollisionResolver) Resolve(player *entity.PhysicsPlayer, obstacles []*entity.Body) Resolution {
	var res Resolution
	settings := r.config.Physics

	for _, obstacle := range obstacles {
		if obstacle == nil || !player.Near(obstacle, settings.ProximityWindow) {
			continue
		}
		res.Candidates++

		if !player.Collide(obstacle) {
			player.ApplyAirFriction(settings.AirFriction)
			res.AirFriction++
			continue
		}

		res.Collisions++
		dir := player.CollisionDirection(obstacle)
		res.Hits[dir]++
		r.respond(player, obstacle, dir, &res)
	}

	if res.Candidates == 0 {
		player.ApplyAirFriction(settings.AirFriction)
		res.AirFriction++
	}

	return res
}

// respond applies the directional correction for a single collision.
func (r *CollisionResolver) respond(player *entity.PhysicsPlayer, obstacle *entity.Body, dir entity.Direction, res *Resolution) {
	switch dir {
	case entity.DirectionBottom:
		if player.SpeedY > 0 {
			player.ResetSpeedY()
			player.RoundY(r.config.Physics.SnapGrid)
		}
		// Rising through a floor does not count as landing
		if player.SpeedY >= 0 && !res.Grounded {
			player.ResetJump()
			res.Grounded = true
		}
		player.ApplySurfaceFriction(obstacle)
	case entity.DirectionTop:
		if player.SpeedY < 0 {
			player.ResetSpeedY()
		}
	case entity.DirectionLeft:
		if player.SpeedX < 0 {
			player.ResetSpeedX()
		}
	case entity.DirectionRight:
		if player.SpeedX > 0 {
			player.ResetSpeedX()
		}
	}
}
