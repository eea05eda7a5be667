package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gracebites-backend/domain"
	"gracebites-backend/entities"
)

func TestBadgeLevelForNgo(t *testing.T) {
	tests := []struct {
		monthlyPeopleServed int
		want                string
	}{
		{0, ""},
		{499, ""},
		{500, domain.BadgeBronze},
		{999, domain.BadgeBronze},
		{1000, domain.BadgeSilver},
		{1499, domain.BadgeSilver},
		{1500, domain.BadgeGold},
		{1699, domain.BadgeGold},
		{1700, domain.BadgeDiamond},
		{2500, domain.BadgeDiamond},
	}

	for _, tt := range tests {
		a := &entities.Analysis{MonthlyPeopleServed: tt.monthlyPeopleServed}
		require.Equal(t, tt.want, BadgeLevelFor(domain.RoleNGO, a),
			"monthly people served %d", tt.monthlyPeopleServed)
	}
}

func TestBadgeLevelForDonor(t *testing.T) {
	tests := []struct {
		monthlyDonationsMade int
		want                 string
	}{
		{0, ""},
		{4, ""},
		{5, domain.BadgeBronze},
		{9, domain.BadgeBronze},
		{10, domain.BadgeSilver},
		{14, domain.BadgeSilver},
		{15, domain.BadgeGold},
		{19, domain.BadgeGold},
		{20, domain.BadgeDiamond},
		{40, domain.BadgeDiamond},
	}

	for _, tt := range tests {
		a := &entities.Analysis{MonthlyDonationsMade: tt.monthlyDonationsMade}
		require.Equal(t, tt.want, BadgeLevelFor(domain.RoleRestaurant, a),
			"monthly donations %d", tt.monthlyDonationsMade)
	}
}

func TestBadgeLevelForEventPlannerUsesDonorRules(t *testing.T) {
	a := &entities.Analysis{MonthlyDonationsMade: 5, MonthlyPeopleServed: 1700}
	require.Equal(t, domain.BadgeBronze, BadgeLevelFor(domain.RoleEventPlanner, a))
}
