package analysis

import (
	"gracebites-backend/domain"
	"gracebites-backend/entities"
	"time"
)

const tierHistoryWindow = 10

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

// CalculateTier rates how consistently a donor gives. Input is the donor's
// full donation history ordered newest first. A single donation is rated on
// recency alone; with two or more, the mean whole-day gap across the last
// ten donations AND the recency of the newest one must both clear the same
// threshold, tightest first (2 days GOLD, 7 PLATINUM, 15 SILVER).
func CalculateTier(donations []*entities.FoodDonation, now time.Time) *domain.Tier {
	if len(donations) == 0 {
		return &domain.Tier{Reason: "No donations yet"}
	}

	daysSinceLast := wholeDays(now.Sub(donations[0].PostedAt))

	if len(donations) < 2 {
		switch {
		case daysSinceLast <= 2:
			return &domain.Tier{Level: domain.TierGold, Reason: "Gold Tier - Recent donor!"}
		case daysSinceLast <= 7:
			return &domain.Tier{Level: domain.TierPlatinum, Reason: "Platinum Tier - Weekly donor!"}
		case daysSinceLast <= 15:
			return &domain.Tier{Level: domain.TierSilver, Reason: "Silver Tier - Bi-weekly donor!"}
		default:
			return &domain.Tier{Reason: "No active tier"}
		}
	}

	recent := donations
	if len(recent) > tierHistoryWindow {
		recent = recent[:tierHistoryWindow]
	}

	totalDays := 0
	for i := 0; i < len(recent)-1; i++ {
		totalDays += wholeDays(recent[i].PostedAt.Sub(recent[i+1].PostedAt))
	}
	avgDaysBetween := float64(totalDays) / float64(len(recent)-1)

	switch {
	case avgDaysBetween <= 2 && daysSinceLast <= 2:
		return &domain.Tier{Level: domain.TierGold, Reason: "Gold Tier - Donates every 2 days!"}
	case avgDaysBetween <= 7 && daysSinceLast <= 7:
		return &domain.Tier{Level: domain.TierPlatinum, Reason: "Platinum Tier - Weekly donor!"}
	case avgDaysBetween <= 15 && daysSinceLast <= 15:
		return &domain.Tier{Level: domain.TierSilver, Reason: "Silver Tier - Bi-weekly donor!"}
	default:
		return &domain.Tier{Reason: "No active tier"}
	}
}
