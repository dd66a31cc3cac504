package realm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLadder_ThresholdsStrictlyIncrease(t *testing.T) {
	for i := range Ladder {
		assert.Equal(t, i+1, Ladder[i].Level)
		assert.NotEmpty(t, Ladder[i].Name)
		if i > 0 {
			assert.Greater(t, Ladder[i].Threshold, Ladder[i-1].Threshold)
		}
	}
	assert.Equal(t, 10, MaxRealm)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		current    int64
		gained     int64
		wantRealm  int
		wantExp    int64
		wantGained int
	}{
		{"below threshold", 1, 100, 200, 1, 300, 0},
		{"exactly reaches threshold", 1, 900, 100, 2, 0, 1},
		{"single promotion with carry", 1, 950, 100, 2, 50, 1},
		{"multi promotion", 1, 950, 4000, 3, 950, 2},
		{"zero gain", 4, 12_000, 0, 4, 12_000, 0},
		{"max realm never promotes", 10, 999_999_000, 5_000, 10, 1_000_004_000, 0},
		{"promotes into max realm and stops", 9, 999_000, 2_000, 10, 1_000, 1},
		{"out of range level is clamped", 0, 0, 10, 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.level, tt.current, tt.gained)
			assert.Equal(t, tt.wantRealm, got.Realm)
			assert.Equal(t, tt.wantExp, got.CurrentExp)
			assert.Equal(t, tt.wantGained, got.RealmsGained)
		})
	}
}

func TestApply_RemainderBelowNewThreshold(t *testing.T) {
	for gained := int64(0); gained < 50_000; gained += 777 {
		got := Apply(1, 0, gained)
		if got.Realm < MaxRealm {
			assert.Less(t, got.CurrentExp, Get(got.Realm).Threshold)
		}
	}
}

func TestProgress(t *testing.T) {
	p := Progress(2, 1500)
	assert.Equal(t, "Foundation Establishment", p.Name)
	assert.Equal(t, int64(1500), p.ExpToNext)
	assert.InDelta(t, 50.0, p.PercentToNext, 1e-9)
	assert.False(t, p.IsMaxRealm)

	top := Progress(MaxRealm, 42)
	assert.True(t, top.IsMaxRealm)
	assert.Zero(t, top.ExpToNext)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Qi Refining", Name(1))
	assert.Equal(t, "True Immortal", Name(99))
}
