package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickupOnPlayer places a pickup centered on the player
func pickupOnPlayer(cfg *Config, p *Player, kind PickupKind) *Pickup {
	c := p.Center()
	return NewPickup(cfg, kind, Vec2{X: c.X - cfg.Pickup.Size/2, Y: c.Y - cfg.Pickup.Size/2})
}

func TestShieldSlots(t *testing.T) {
	obs := newRecordingObserver()
	s, _ := quietSim(t, WithObserver(obs))
	st := s.State()
	cfg := s.Config()

	first := pickupOnPlayer(&cfg, st.Player, PickupShield)
	st.Pickups = append(st.Pickups, first)
	s.Advance(1)
	assert.Equal(t, Equipped, first.State())
	require.NotNil(t, st.Equipment.Shield(SlotTop))
	assert.Nil(t, st.Equipment.Shield(SlotBottom))
	assert.Empty(t, st.Pickups, "collected pickup is removed")

	second := pickupOnPlayer(&cfg, st.Player, PickupShield)
	st.Pickups = append(st.Pickups, second)
	s.Advance(1)
	assert.Equal(t, Equipped, second.State())
	require.NotNil(t, st.Equipment.Shield(SlotBottom))

	third := pickupOnPlayer(&cfg, st.Player, PickupShield)
	st.Pickups = append(st.Pickups, third)
	s.Advance(1)
	assert.Equal(t, Gone, third.State(), "no third slot")
	assert.Len(t, st.Equipment.Attachments(), 2)
	assert.Equal(t, []Kind{KindShield, KindShield}, obs.equipped)
}

func TestSingleForcePod(t *testing.T) {
	s, _ := quietSim(t)
	st := s.State()
	cfg := s.Config()

	for i := 0; i < 2; i++ {
		st.Pickups = append(st.Pickups, pickupOnPlayer(&cfg, st.Player, PickupForce))
		s.Advance(1)
	}
	require.NotNil(t, st.Equipment.Force())
	assert.Len(t, st.Equipment.Attachments(), 1)
}

func TestPickupLeavingFieldIsGone(t *testing.T) {
	s, _ := quietSim(t)
	st := s.State()
	cfg := s.Config()

	p := NewPickup(&cfg, PickupShield, Vec2{X: -cfg.Pickup.Size + 1, Y: 0})
	st.Pickups = append(st.Pickups, p)
	s.Advance(1)

	assert.Equal(t, Gone, p.State())
	assert.Empty(t, st.Pickups)
	assert.Empty(t, st.Equipment.Attachments())
}

func TestShieldTrailsPlayerThroughLagBuffer(t *testing.T) {
	cfg := DefaultConfig()
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	f := testFrame(st, &cfg, cfg.Shield.LagInterval)

	require.True(t, st.Equipment.Equip(f, PickupShield))
	shield := st.Equipment.Shield(SlotTop)

	lag := cfg.Shield.LagSamples
	var history []Vec2
	for tick := 0; tick < 40; tick++ {
		pos := Vec2{X: float64(tick * 3), Y: 100 + float64(tick)}
		st.Player.Pos = pos
		history = append(history, pos)

		shield.Update(f)

		if tick < lag {
			assert.Equal(t, pos, shield.Anchor(), "tick %d: tracks the player until the buffer fills", tick)
		} else {
			assert.Equal(t, history[tick-lag], shield.Anchor(), "tick %d", tick)
		}
	}

	want := shield.Anchor().Add(Vec2{X: cfg.Player.Width / 2, Y: cfg.Player.Height/2 - cfg.Shield.Offset})
	assert.Equal(t, want, shield.Center())
}

func TestShieldSamplesOncePerLagInterval(t *testing.T) {
	cfg := DefaultConfig()
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	f := testFrame(st, &cfg, cfg.Shield.LagInterval/4)

	require.True(t, st.Equipment.Equip(f, PickupShield))
	shield := st.Equipment.Shield(SlotTop)

	for i := 0; i < 4*cfg.Shield.LagSamples-1; i++ {
		shield.Update(f)
	}
	assert.Equal(t, cfg.Shield.LagSamples-1, shield.history.Len())
}

func TestShieldLagHoldsAtUnevenFrameTimes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shield.LagInterval = 20
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	f := testFrame(st, &cfg, 16)

	require.True(t, st.Equipment.Equip(f, PickupShield))
	shield := st.Equipment.Shield(SlotTop)

	want := float64(cfg.Shield.LagSamples) * cfg.Shield.LagInterval
	for tick := 0; tick < 100; tick++ {
		st.Player.Pos = Vec2{X: float64(tick), Y: 100}
		shield.Update(f)

		if tick >= 40 {
			lag := (float64(tick) - shield.Anchor().X) * f.Dt
			assert.InDelta(t, want, lag, f.Dt, "tick %d", tick)
		}
	}
}

func TestBottomShieldOffsetsDown(t *testing.T) {
	cfg := DefaultConfig()
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	f := testFrame(st, &cfg, 1)

	require.True(t, st.Equipment.Equip(f, PickupShield))
	require.True(t, st.Equipment.Equip(f, PickupShield))

	top := st.Equipment.Shield(SlotTop).Center()
	bottom := st.Equipment.Shield(SlotBottom).Center()
	assert.Equal(t, 2*cfg.Shield.Offset, bottom.Y-top.Y)
	assert.Equal(t, st.Player.Center().X, top.X)
}

func TestAttachmentsDestroyHostilesWithoutBeingConsumed(t *testing.T) {
	obs := newRecordingObserver()
	s, _ := quietSim(t, WithObserver(obs))
	st := s.State()
	cfg := s.Config()

	f := testFrame(st, &cfg, 1)
	require.True(t, st.Equipment.Equip(f, PickupForce))
	pod := st.Equipment.Force()
	pod.Offset = Vec2{X: 300}

	for i := 0; i < 3; i++ {
		c := st.Player.Center().Add(pod.Offset)
		h := NewHostile(&cfg, HostileDrone, Vec2{X: c.X - cfg.Hostile.Width/2, Y: c.Y - cfg.Hostile.Height/2}, 0, 0)
		st.Hostiles = append(st.Hostiles, h)
		before := s.Score()

		s.Advance(1)

		assert.True(t, h.Dead())
		assert.Equal(t, before+cfg.Score.KillPoints, s.Score())
		assert.Empty(t, st.Hostiles)
	}
	assert.Same(t, pod, st.Equipment.Force(), "pod persists")
	assert.Equal(t, 3, obs.killed)
}

func TestForcePodIsRigid(t *testing.T) {
	s, in := quietSim(t)
	st := s.State()
	cfg := s.Config()

	f := testFrame(st, &cfg, 1)
	require.True(t, st.Equipment.Equip(f, PickupForce))

	in.Keys = Keys(KeyDown, KeyRight)
	for i := 0; i < 5; i++ {
		s.Advance(1)
		want := st.Player.Center().Add(Vec2{X: cfg.Force.OffsetX, Y: cfg.Force.OffsetY})
		assert.Equal(t, want, st.Equipment.Force().Center())
	}
}
