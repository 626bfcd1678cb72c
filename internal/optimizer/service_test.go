package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	gc, err := LoadGoalCatalog(shippedGoalCatalog)
	require.NoError(t, err)
	return NewService(newTestOptimizer(), gc, 0)
}

func TestService_Optimize(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		goal    string
		topN    int
		wantLen int
		wantErr error
	}{
		{"default topN", "best-profit", 0, domain.DefaultOptimizerTopN, nil},
		{"explicit topN", "Most-Effects", 2, 2, nil},
		{"clamped topN", "balanced", 1000, domain.MaxOptimizerTopN, nil},
		{"unknown goal", "get-rich", 5, 0, domain.ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := svc.Optimize(ctx, fullInventory(), tt.goal, tt.topN)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, recs, tt.wantLen)
		})
	}
}

func TestService_ConfiguredDefaultTopN(t *testing.T) {
	gc, err := LoadGoalCatalog(shippedGoalCatalog)
	require.NoError(t, err)
	svc := NewService(newTestOptimizer(), gc, 7)

	recs, err := svc.Optimize(context.Background(), fullInventory(), "best-profit", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 7)
}

func TestService_Goals(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Goals(context.Background()), len(Goals))
	assert.Len(t, svc.GroupedGoals(context.Background()), 4)
}
