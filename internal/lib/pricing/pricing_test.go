package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

func TestMonthlyPrice(t *testing.T) {
	tests := []struct {
		name         string
		planType     string
		deliveryDays int
		want         float64
		wantErr      bool
	}{
		{
			name:         "diet plan single delivery day",
			planType:     models.PlanDiet,
			deliveryDays: 1,
			want:         30000 * 4.3,
		},
		{
			name:         "protein plan five delivery days",
			planType:     models.PlanProtein,
			deliveryDays: 5,
			want:         40000 * 5 * 4.3,
		},
		{
			name:         "royal plan seven delivery days",
			planType:     models.PlanRoyal,
			deliveryDays: 7,
			want:         60000 * 7 * 4.3,
		},
		{
			name:         "unknown plan",
			planType:     "PREMIUM",
			deliveryDays: 3,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPrice(tt.planType, tt.deliveryDays)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestBasePrice_AllPlans(t *testing.T) {
	for plan, want := range map[string]float64{
		models.PlanDiet:    30000,
		models.PlanProtein: 40000,
		models.PlanRoyal:   60000,
	} {
		got, err := BasePrice(plan)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
