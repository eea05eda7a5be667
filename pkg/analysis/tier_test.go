package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gracebites-backend/domain"
	"gracebites-backend/entities"
)

func donationsAtDaysAgo(now time.Time, daysAgo ...float64) []*entities.FoodDonation {
	donations := make([]*entities.FoodDonation, 0, len(daysAgo))
	for _, d := range daysAgo {
		donations = append(donations, &entities.FoodDonation{
			PostedAt: now.Add(-time.Duration(d * 24 * float64(time.Hour))),
		})
	}
	return donations
}

func TestCalculateTier(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		daysAgo    []float64
		wantLevel  string
		wantReason string
	}{
		{
			name:       "no donations",
			daysAgo:    nil,
			wantLevel:  "",
			wantReason: "No donations yet",
		},
		{
			name:       "single donation one day ago",
			daysAgo:    []float64{1},
			wantLevel:  domain.TierGold,
			wantReason: "Gold Tier - Recent donor!",
		},
		{
			name:       "single donation five days ago",
			daysAgo:    []float64{5},
			wantLevel:  domain.TierPlatinum,
			wantReason: "Platinum Tier - Weekly donor!",
		},
		{
			name:       "single donation ten days ago",
			daysAgo:    []float64{10},
			wantLevel:  domain.TierSilver,
			wantReason: "Silver Tier - Bi-weekly donor!",
		},
		{
			name:       "single donation twenty days ago",
			daysAgo:    []float64{20},
			wantLevel:  "",
			wantReason: "No active tier",
		},
		{
			name:       "every two days and fresh",
			daysAgo:    []float64{1, 3, 5, 7},
			wantLevel:  domain.TierGold,
			wantReason: "Gold Tier - Donates every 2 days!",
		},
		{
			name:       "weekly cadence",
			daysAgo:    []float64{3, 10, 17},
			wantLevel:  domain.TierPlatinum,
			wantReason: "Platinum Tier - Weekly donor!",
		},
		{
			name:       "biweekly cadence",
			daysAgo:    []float64{5, 19, 33},
			wantLevel:  domain.TierSilver,
			wantReason: "Silver Tier - Bi-weekly donor!",
		},
		{
			// The cadence alone would rate GOLD, but the newest donation is
			// too old; both conditions must clear the same threshold.
			name:       "tight cadence gone stale",
			daysAgo:    []float64{10, 12, 14},
			wantLevel:  domain.TierSilver,
			wantReason: "Silver Tier - Bi-weekly donor!",
		},
		{
			name:       "sparse history",
			daysAgo:    []float64{5, 30, 60},
			wantLevel:  "",
			wantReason: "No active tier",
		},
		{
			// Gaps beyond the ten most recent donations never count.
			name:       "old outliers outside the window",
			daysAgo:    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 200, 400},
			wantLevel:  domain.TierGold,
			wantReason: "Gold Tier - Donates every 2 days!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := CalculateTier(donationsAtDaysAgo(now, tt.daysAgo...), now)
			require.Equal(t, tt.wantLevel, tier.Level)
			require.Equal(t, tt.wantReason, tier.Reason)
		})
	}
}

func TestWholeDaysTruncates(t *testing.T) {
	require.Equal(t, 0, wholeDays(23*time.Hour))
	require.Equal(t, 1, wholeDays(24*time.Hour))
	require.Equal(t, 1, wholeDays(47*time.Hour))
	require.Equal(t, 2, wholeDays(48*time.Hour))
}
