package sim

import (
	"github.com/milk9111/worldtree/actor"
)

// interact runs the all-pairs sweep between the hero and everything else
// in the room.
func (s *Sim) interact() {
	h := s.hero
	if box, ok := h.AttackBox(); ok {
		reach := actor.RectBB(box)
		for _, e := range s.actors {
			if e.Kind != actor.KindEnemy || e.Dead || e.Invulnerable > 0 {
				continue
			}
			if reach.Intersects(e.BB()) {
				e.CollisionPushback(h)
				s.hurt(e, h.Damage)
				s.hitstop = s.content.Game.HitStopFrames
			}
		}
	}

	for _, a := range s.actors {
		if a.Dead || h.Dead {
			continue
		}
		switch a.Kind {
		case actor.KindEnemy, actor.KindArea:
			if h.Invulnerable == 0 && h.Touches(a) {
				h.CollisionPushback(a)
				s.hurt(h, a.Damage)
			}
		case actor.KindItem:
			if h.Touches(a) {
				s.collect(a)
			}
		case actor.KindProjectile:
			s.projectileHits(a)
		}
	}

	if h.Dead && s.state == Playing {
		s.state = GameOver
		s.events.Push(Event{Kind: EventPlayerDied})
		s.log.Info("hero died")
	}
}

func (s *Sim) hurt(a *actor.Actor, damage int) {
	if damage <= 0 || a.Dead {
		return
	}
	died := a.TakeHit(damage, s)
	s.events.Push(Event{Kind: EventDamaged, Data: Damaged{ID: a.ID, Name: a.Name, Amount: damage}})
	if !died {
		return
	}
	s.events.Push(Event{Kind: EventDied, Data: Damaged{ID: a.ID, Name: a.Name, Amount: damage}})
	if a.Kind != actor.KindEnemy {
		return
	}
	s.drop(a)
	if a.Enemy.Boss && s.state == Playing {
		s.state = Won
		s.events.Push(Event{Kind: EventWon})
		s.log.Info("boss defeated")
	}
}

func (s *Sim) projectileHits(p *actor.Actor) {
	if p.Projectile.FromHero {
		for _, e := range s.actors {
			if e.Kind != actor.KindEnemy || e.Dead || e.Invulnerable > 0 {
				continue
			}
			if p.Touches(e) {
				s.hurt(e, p.Damage)
				p.Dead = true
				return
			}
		}
		return
	}
	if s.hero.Invulnerable == 0 && p.Touches(s.hero) {
		s.hurt(s.hero, p.Damage)
		p.Dead = true
	}
}

func (s *Sim) collect(item *actor.Actor) {
	it := item.Item
	s.hero.Collect(it)
	item.Dead = true
	s.Sound("pickup")
	if it.Unique && it.Key != "" {
		s.progress.Collect(it.Key)
	}
	s.recordStats()
	s.events.Push(Event{Kind: EventItemCollected, Data: Collected{Name: item.Name, Effect: it.Effect, Key: it.Key}})
}

// drop rolls the drop table once per entry and leaves at most one pickup
// where the enemy died.
func (s *Sim) drop(e *actor.Actor) {
	hb := e.Hitbox()
	col, row := s.room.TileIndexForPoint(hb.CenterX(), hb.Bottom())
	if !s.room.InBounds(col, row) {
		return
	}
	for _, d := range s.content.Spawns.Drops {
		if d.Chance <= 0 || s.rng.IntN(100) >= d.Chance {
			continue
		}
		s.Spawn(actor.NewItem(s.room, 0, d, col, row, ""))
		return
	}
}

// applyStats restores saved upgrades onto a fresh hero.
func (s *Sim) applyStats() {
	st, h := s.progress.Stats, s.hero
	if st.MaxHP > h.MaxHP {
		h.MaxHP = st.MaxHP
		h.HP = st.MaxHP
	}
	if st.MaxJumps > h.Hero.MaxJumps {
		h.Hero.MaxJumps = st.MaxJumps
	}
	if st.MaxAmmo > h.Hero.MaxAmmo {
		h.Hero.MaxAmmo = st.MaxAmmo
		h.Hero.Ammo = st.MaxAmmo
	}
	s.recordStats()
}

func (s *Sim) recordStats() {
	h := s.hero
	s.progress.Stats.MaxHP = h.MaxHP
	s.progress.Stats.MaxJumps = h.Hero.MaxJumps
	s.progress.Stats.MaxAmmo = h.Hero.MaxAmmo
}
