package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elfrevenge/sim"
)

// Particle is a single cosmetic spark; it never collides
type Particle struct {
	pos      sim.Vec2
	vel      sim.Vec2 // units per second
	age      float64  // seconds
	lifetime float64  // seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits particles from a point attached to the ship
type ParticleSystem struct {
	particles     []Particle
	maxParticles  int
	emissionRate  float64 // particles per second
	emissionTimer float64

	emitterPos    sim.Vec2
	emitterFacing sim.Vec2
	emitterVel    sim.Vec2

	// emitterOffset is how far along the facing the emitter sits
	emitterOffset float64
	// directionOffset turns the emission away from the facing, in degrees
	directionOffset float64
	// spread is the half-angle of the emission cone, in degrees
	spread float64

	velocityMin, velocityMax float64
	lifetimeMin, lifetimeMax float64
	sizeMin, sizeMax         float64
	colorBase                color.NRGBA
	colorVariation           color.NRGBA
	active                   bool
}

// Update moves the emitter, emits while active and ages particles
func (ps *ParticleSystem) Update(dt float64, pos, facing, vel sim.Vec2) {
	ps.emitterPos = pos
	ps.emitterFacing = facing
	ps.emitterVel = vel

	if ps.active {
		ps.emissionTimer += dt
		n := int(ps.emissionRate * ps.emissionTimer)
		if n > 0 {
			ps.emissionTimer -= float64(n) / ps.emissionRate
			for i := 0; i < n; i++ {
				ps.emit(ps.emitterPos.Add(ps.emitterFacing.Scale(ps.emitterOffset)),
					ps.emitterFacing.Rotate(ps.directionOffset))
			}
		}
	}
	ps.age(dt)
}

func (ps *ParticleSystem) age(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// emit adds one particle leaving at along direction, within the spread
func (ps *ParticleSystem) emit(at, direction sim.Vec2) {
	if len(ps.particles) >= ps.maxParticles {
		return
	}

	dir := direction.Rotate((rand.Float64()*2 - 1) * ps.spread)
	speed := ps.velocityMin + rand.Float64()*(ps.velocityMax-ps.velocityMin)

	ps.particles = append(ps.particles, Particle{
		pos:      at,
		vel:      dir.Scale(speed).Add(ps.emitterVel),
		lifetime: ps.lifetimeMin + rand.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
		color:    vary(ps.colorBase, ps.colorVariation),
		size:     ps.sizeMin + rand.Float64()*(ps.sizeMax-ps.sizeMin),
	})
}

// Burst emits n particles from pos in every direction
func (ps *ParticleSystem) Burst(pos sim.Vec2, n int) {
	ps.emitterVel = sim.Vec2{}
	for i := 0; i < n; i++ {
		ps.emit(pos, sim.Up.Rotate(rand.Float64()*360))
	}
}

// SetActive sets whether the system is emitting
func (ps *ParticleSystem) SetActive(active bool) {
	ps.active = active
	if !active {
		ps.emissionTimer = 0
	}
}

// Draw renders the particles fading out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		fade := math.Max(0, math.Min(1, 1-p.age/p.lifetime)) * 0.6
		clr := p.color
		clr.A = uint8(float64(clr.A) * fade)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), clr, true)
	}
}

func vary(base, variation color.NRGBA) color.NRGBA {
	channel := func(b, v uint8) uint8 {
		c := float64(b) + (rand.Float64()*2-1)*float64(v)
		return uint8(math.Max(0, math.Min(255, c)))
	}
	return color.NRGBA{
		R: channel(base.R, variation.R),
		G: channel(base.G, variation.G),
		B: channel(base.B, variation.B),
		A: base.A,
	}
}

// NewThrustParticles emits backwards from the tail of a ship of radius r
func NewThrustParticles(r float64) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:    50,
		emissionRate:    60,
		emitterOffset:   -r * 0.4,
		directionOffset: 180,
		spread:          30,
		velocityMin:     80,
		velocityMax:     150,
		lifetimeMin:     0.2,
		lifetimeMax:     0.5,
		sizeMin:         1.5,
		sizeMax:         3,
		colorBase:       color.NRGBA{R: 255, G: 200, B: 0, A: 255},
		colorVariation:  color.NRGBA{R: 55, G: 100},
	}
}

// NewReverseParticles emits forwards from the nose of a ship of radius r
func NewReverseParticles(r float64) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   50,
		emissionRate:   60,
		emitterOffset:  r,
		spread:         30,
		velocityMin:    80,
		velocityMax:    150,
		lifetimeMin:    0.2,
		lifetimeMax:    0.5,
		sizeMin:        1.5,
		sizeMax:        3,
		colorBase:      color.NRGBA{R: 100, G: 150, B: 255, A: 255},
		colorVariation: color.NRGBA{R: 50, G: 50, B: 55},
	}
}

// NewDebris is a burst-only system for the ship's explosion
func NewDebris() *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   120,
		spread:         0,
		velocityMin:    40,
		velocityMax:    220,
		lifetimeMin:    0.4,
		lifetimeMax:    1.2,
		sizeMin:        1.5,
		sizeMax:        4,
		colorBase:      color.NRGBA{R: 255, G: 140, B: 40, A: 255},
		colorVariation: color.NRGBA{R: 0, G: 80, B: 40},
	}
}

// Effects holds the ship's particle systems
type Effects struct {
	thrust  *ParticleSystem
	reverse *ParticleSystem
	debris  *ParticleSystem

	lastShip *sim.Ship
	lastPos  sim.Vec2
}

// NewEffects creates the particle systems for a ship of radius r
func NewEffects(r float64) *Effects {
	return &Effects{
		thrust:  NewThrustParticles(r),
		reverse: NewReverseParticles(r),
		debris:  NewDebris(),
	}
}

// Update follows the ship, emits exhaust for the held controls and
// bursts debris on the frame the ship disappears
func (e *Effects) Update(dt float64, ship *sim.Ship, c sim.Controls) {
	if ship == nil && e.lastShip != nil {
		e.debris.Burst(e.lastPos, 80)
	}
	e.lastShip = ship

	var pos, facing, vel sim.Vec2
	thrust, reverse := false, false
	if ship != nil {
		pos, facing, vel = ship.Pos, ship.Facing, ship.Vel
		e.lastPos = pos
		thrust = c.Thrust
		reverse = c.Reverse && !c.Thrust
	}

	// Ship velocity is per tick; particles move per second.
	vel = vel.Scale(1 / dt)
	e.thrust.SetActive(thrust)
	e.thrust.Update(dt, pos, facing, vel)
	e.reverse.SetActive(reverse)
	e.reverse.Update(dt, pos, facing, vel)
	e.debris.Update(dt, pos, facing, vel)
}

// Draw renders every system
func (e *Effects) Draw(screen *ebiten.Image) {
	e.thrust.Draw(screen)
	e.reverse.Draw(screen)
	e.debris.Draw(screen)
}
