package analysis

import (
	"gracebites-backend/domain"
	"gracebites-backend/entities"
)

type badgeRule struct {
	threshold int
	level     string
}

// Evaluated highest first, first match wins.
var (
	ngoBadgeRules = []badgeRule{
		{1700, domain.BadgeDiamond},
		{1500, domain.BadgeGold},
		{1000, domain.BadgeSilver},
		{500, domain.BadgeBronze},
	}

	donorBadgeRules = []badgeRule{
		{20, domain.BadgeDiamond},
		{15, domain.BadgeGold},
		{10, domain.BadgeSilver},
		{5, domain.BadgeBronze},
	}
)

// BadgeLevelFor grades monthly performance: NGOs by people served, donors
// (restaurants and event planners) by donations made. Empty string means no
// badge earned yet.
func BadgeLevelFor(role string, a *entities.Analysis) string {
	rules := donorBadgeRules
	value := a.MonthlyDonationsMade
	if role == domain.RoleNGO {
		rules = ngoBadgeRules
		value = a.MonthlyPeopleServed
	}

	for _, rule := range rules {
		if value >= rule.threshold {
			return rule.level
		}
	}
	return ""
}
