package sim

import (
	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// Spawner creates and repositions entities. Every random value goes through
// the RNG so a seeded session is reproducible.
type Spawner struct {
	cfg    config.ShooterConfig
	rng    *RNG
	nextID uint64
}

// NewSpawner creates a spawner for the given configuration.
func NewSpawner(cfg config.ShooterConfig, rng *RNG) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// NextID returns a fresh, strictly increasing spawn ID.
func (s *Spawner) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// SpawnPlayer places the ship horizontally centered near the bottom edge.
func (s *Spawner) SpawnPlayer() Player {
	pc := s.cfg.Player
	r := core.NewRect(0, 0, pc.Width, pc.Height)
	r.X = s.cfg.Playfield.Width/2 - pc.Width/2
	r.Y = s.cfg.Playfield.Height - pc.BottomMargin - pc.Height
	r.ClampX(s.cfg.Playfield.Width)
	return Player{Rect: r}
}

// SpawnEnemy creates an enemy at a random position in the spawn band.
func (s *Spawner) SpawnEnemy() Enemy {
	e := Enemy{VY: s.cfg.Enemies.Speed}
	s.placeEnemy(&e)
	return e
}

// RespawnEnemy moves an existing enemy back to the spawn band in place,
// keeping its slot.
func (s *Spawner) RespawnEnemy(e *Enemy) {
	s.placeEnemy(e)
	e.Generation++
}

func (s *Spawner) placeEnemy(e *Enemy) {
	ec := s.cfg.Enemies
	e.ID = s.NextID()
	e.W, e.H = ec.Width, ec.Height
	// Never out of bounds horizontally, even for an enemy wider than the field.
	e.X = s.rng.Range(0, core.Max(0, s.cfg.Playfield.Width-ec.Width))
	e.Y = s.rng.Range(ec.SpawnMinY, ec.SpawnMaxY)
}

// SpawnPowerUp creates a power-up whose center is exactly (cx, cy).
func (s *Spawner) SpawnPowerUp(cx, cy int) PowerUp {
	pc := s.cfg.PowerUps
	return PowerUp{
		Rect: core.RectFromCenter(cx, cy, pc.Width, pc.Height),
		ID:   s.NextID(),
		VY:   pc.Speed,
	}
}

// RollDrop decides whether a destroyed enemy leaves a power-up behind.
func (s *Spawner) RollDrop() bool {
	if !s.cfg.PowerUps.Enabled {
		return false
	}
	return s.rng.Chance(s.cfg.PowerUps.DropChance)
}

// SpawnProjectile creates a shot with the given center x whose bottom edge
// sits at bottom.
func (s *Spawner) SpawnProjectile(cx, bottom int) Projectile {
	pc := s.cfg.Projectile
	r := core.RectFromCenter(cx, 0, pc.Width, pc.Height)
	r.Y = bottom - pc.Height
	return Projectile{Rect: r, ID: s.NextID(), VY: -pc.Speed}
}

// SpawnStar creates a star anywhere on the playfield.
func (s *Spawner) SpawnStar() Star {
	sc := s.cfg.Stars
	return Star{
		X:     s.rng.Intn(s.cfg.Playfield.Width),
		Y:     s.rng.Intn(s.cfg.Playfield.Height),
		Speed: s.rng.Range(sc.MinSpeed, sc.MaxSpeed),
		Size:  s.rng.Range(sc.MinSize, sc.MaxSize),
	}
}

// WrapStar sends a star that fell off the bottom back to the top edge.
func (s *Spawner) WrapStar(st *Star) {
	st.Y = 0
	st.X = s.rng.Intn(s.cfg.Playfield.Width)
}
