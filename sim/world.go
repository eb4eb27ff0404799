package sim

// StepResult reports what happened during one World step
type StepResult struct {
	// ShipLost is set when an enemy destroyed the ship this step
	ShipLost bool

	// Destroyed counts the enemies shot down this step
	Destroyed int

	// Cleared is set when no enemies remain and the ship is alive
	Cleared bool
}

// World owns the live entities of a session and advances them
type World struct {
	cfg   Config
	rng   Rand
	audio AudioSink

	// ship is nil once destroyed
	ship        *Ship
	enemies     []*Enemy
	projectiles []*Projectile

	score int

	// scratch space reused between steps
	enemyHit      []bool
	projectileHit []bool
	spawned       []*Enemy
}

// NewWorld creates an empty world. A nil audio sink is silent.
func NewWorld(cfg Config, rng Rand, audio AudioSink) *World {
	if audio == nil {
		audio = silent{}
	}
	return &World{
		cfg:         cfg,
		rng:         rng,
		audio:       audio,
		enemies:     make([]*Enemy, 0, cfg.EnemyCount*4),
		projectiles: make([]*Projectile, 0, 64),
	}
}

// Config returns the tuning the world runs with
func (w *World) Config() Config { return w.cfg }

// Ship returns the player's ship, or nil when it has been destroyed
func (w *World) Ship() *Ship { return w.ship }

// Enemies returns the live enemies. The slice must not be modified.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Projectiles returns the live projectiles. The slice must not be modified.
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// Score returns the enemies destroyed while the ship was alive
func (w *World) Score() int { return w.score }

// Won reports whether every enemy is gone and the ship survived
func (w *World) Won() bool { return len(w.enemies) == 0 && w.ship != nil }

// Lost reports whether the ship has been destroyed
func (w *World) Lost() bool { return w.ship == nil }

// Clear removes every entity and zeroes the score
func (w *World) Clear() {
	w.ship = nil
	w.enemies = w.enemies[:0]
	w.projectiles = w.projectiles[:0]
	w.score = 0
}

// Reset clears the world, places a fresh ship at the centre and spawns
// the configured number of large enemies away from it
func (w *World) Reset() {
	w.Clear()
	center := w.cfg.Center()
	w.ship = NewShip(w.cfg, center)
	for i := 0; i < w.cfg.EnemyCount; i++ {
		w.enemies = append(w.enemies, NewEnemy(w.cfg, w.rng, w.spawnPoint(center), TierLarge))
	}
}

// spawnPoint samples whole-unit positions until one is far enough from
// avoid. The field is much larger than the separation, so this ends quickly.
func (w *World) spawnPoint(avoid Vec2) Vec2 {
	for {
		p := Vec2{
			X: float64(w.rng.Intn(int(w.cfg.Width))),
			Y: float64(w.rng.Intn(int(w.cfg.Height))),
		}
		if p.Dist(avoid) > w.cfg.MinSpawnDistance {
			return p
		}
	}
}

// PlaceShip puts a new ship at pos, replacing any existing one
func (w *World) PlaceShip(pos Vec2) *Ship {
	w.ship = NewShip(w.cfg, pos)
	return w.ship
}

// AddEnemy inserts an enemy into the live set
func (w *World) AddEnemy(e *Enemy) {
	w.enemies = append(w.enemies, e)
}

// AddProjectile inserts a projectile into the live set
func (w *World) AddProjectile(p *Projectile) {
	w.projectiles = append(w.projectiles, p)
}

// Shoot fires a projectile from the ship. It reports false when there
// is no ship to fire from.
func (w *World) Shoot() bool {
	if w.ship == nil {
		return false
	}
	w.AddProjectile(w.ship.Shoot())
	w.audio.Play(SoundLaser)
	return true
}

// Step advances the world by one tick: move, ship collisions,
// projectile hits, pruning, then the win check
func (w *World) Step() StepResult {
	var res StepResult

	w.move()
	res.ShipLost = w.checkShip()
	res.Destroyed = w.checkHits()
	w.pruneProjectiles()
	res.Cleared = w.Won()

	return res
}

func (w *World) move() {
	for _, e := range w.enemies {
		e.Move(w.cfg.Width, w.cfg.Height)
	}
	for _, p := range w.projectiles {
		p.Move(w.cfg.Width, w.cfg.Height)
	}
	if w.ship != nil {
		w.ship.Move(w.cfg.Width, w.cfg.Height)
	}
}

// checkShip destroys the ship on the first enemy touching it
func (w *World) checkShip() bool {
	if w.ship == nil {
		return false
	}
	for _, e := range w.enemies {
		if e.CollidesWith(w.ship) {
			w.audio.Play(SoundShipExplosion)
			w.ship = nil
			return true
		}
	}
	return false
}

// checkHits pairs each projectile with at most one enemy. Hits are
// marked during the scan and removed after it; fragments join the live
// set only once the scan is over.
func (w *World) checkHits() int {
	w.enemyHit = resetMarks(w.enemyHit, len(w.enemies))
	w.projectileHit = resetMarks(w.projectileHit, len(w.projectiles))
	w.spawned = w.spawned[:0]

	destroyed := 0
	for pi, p := range w.projectiles {
		for ei, e := range w.enemies {
			if w.enemyHit[ei] || !e.CollidesWith(p) {
				continue
			}
			w.enemyHit[ei] = true
			w.projectileHit[pi] = true
			w.spawned = append(w.spawned, e.Split(w.rng)...)
			w.audio.Play(SoundEnemyExplosion)
			if w.ship != nil {
				w.score++
			}
			destroyed++
			break
		}
	}
	if destroyed == 0 {
		return 0
	}

	w.enemies = compact(w.enemies, w.enemyHit)
	w.enemies = append(w.enemies, w.spawned...)
	w.projectiles = compact(w.projectiles, w.projectileHit)
	clear(w.spawned)
	return destroyed
}

// pruneProjectiles drops projectiles that have left the field
func (w *World) pruneProjectiles() {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		if w.cfg.InBounds(p.Pos) {
			kept = append(kept, p)
		}
	}
	clear(w.projectiles[len(kept):])
	w.projectiles = kept
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	clear(marks)
	return marks
}

// compact removes the marked elements in place, keeping order
func compact[T any](items []*T, marked []bool) []*T {
	kept := items[:0]
	for i, it := range items {
		if !marked[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
