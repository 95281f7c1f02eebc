package hud

import "testing"

func TestStateRecordsWrites(t *testing.T) {
	s := NewState()
	if !s.Tutorial {
		t.Error("tutorial overlay should start visible")
	}

	var sink Sink = s
	sink.SetCoins(7)
	sink.SetAmmo(3)
	sink.SetReloading(true)
	sink.SetWeapon(SilhouetteRifle)
	sink.SetReward("+4 coins")

	if s.Coins != 7 || s.Ammo != 3 || !s.Reloading || s.Weapon != SilhouetteRifle {
		t.Errorf("unexpected state %+v", s)
	}
	if !s.RewardActive || s.Reward != "+4 coins" {
		t.Errorf("reward = %q active=%v", s.Reward, s.RewardActive)
	}

	sink.ClearReward()
	if s.RewardActive || s.Reward != "" {
		t.Error("ClearReward should hide the reward text")
	}
}
