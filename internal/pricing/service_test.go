package pricing_test

import (
	"context"
	"testing"

	"portfolio-api/internal/pricing"
	"portfolio-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) pricing.Service {
	db := testdb.New(t, (*pricing.Pricing)(nil))
	return pricing.NewService(pricing.NewRepository(db))
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestCreatePricing(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	t.Run("TotalCostIsDerived", func(t *testing.T) {
		created, err := service.CreatePricing(ctx, pricing.CreateInput{
			Service:        "Backend development",
			Description:    "REST and GraphQL APIs",
			RatePerHour:    floatPtr(50.00),
			EstimatedHours: floatPtr(3.50),
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.InDelta(t, 175.00, created.TotalCost, 0.001)

		got, err := service.GetPricingByID(ctx, created.ID)
		require.NoError(t, err)
		assert.InDelta(t, 175.00, got.TotalCost, 0.001)
	})

	t.Run("AmountsRoundToTwoDecimals", func(t *testing.T) {
		created, err := service.CreatePricing(ctx, pricing.CreateInput{
			Service:        "Consulting",
			Description:    "Hourly consulting",
			RatePerHour:    floatPtr(33.333),
			EstimatedHours: floatPtr(2),
		})
		require.NoError(t, err)
		assert.InDelta(t, 33.33, created.RatePerHour, 0.001)
		assert.InDelta(t, 66.66, created.TotalCost, 0.001)
	})

	t.Run("ExplicitZeroIsAllowed", func(t *testing.T) {
		created, err := service.CreatePricing(ctx, pricing.CreateInput{
			Service:        "Open source review",
			Description:    "Free of charge",
			RatePerHour:    floatPtr(0),
			EstimatedHours: floatPtr(5),
		})
		require.NoError(t, err)
		assert.Zero(t, created.TotalCost)
	})

	t.Run("MissingAmountsRejected", func(t *testing.T) {
		_, err := service.CreatePricing(ctx, pricing.CreateInput{
			Service:     "No rate",
			Description: "Amounts omitted entirely",
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidInput)
	})

	t.Run("NegativeRateRejected", func(t *testing.T) {
		_, err := service.CreatePricing(ctx, pricing.CreateInput{
			Service:        "Bad rate",
			Description:    "negative",
			RatePerHour:    floatPtr(-10),
			EstimatedHours: floatPtr(1),
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidInput)
	})
}

func TestUpdatePricing(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreatePricing(ctx, pricing.CreateInput{
		Service:        "Backend development",
		Description:    "APIs",
		RatePerHour:    floatPtr(50),
		EstimatedHours: floatPtr(3.5),
	})
	require.NoError(t, err)

	t.Run("TotalCostRecomputedAfterUpdate", func(t *testing.T) {
		updated, err := service.UpdatePricing(ctx, created.ID, pricing.UpdateInput{
			RatePerHour: floatPtr(60),
		})
		require.NoError(t, err)
		assert.InDelta(t, 60.00, updated.RatePerHour, 0.001)
		assert.InDelta(t, 3.50, updated.EstimatedHours, 0.001)
		assert.InDelta(t, 210.00, updated.TotalCost, 0.001)
		assert.Equal(t, "Backend development", updated.Service)
	})

	t.Run("DescriptionOnlyLeavesAmountsAlone", func(t *testing.T) {
		updated, err := service.UpdatePricing(ctx, created.ID, pricing.UpdateInput{
			Description: strPtr("APIs and integrations"),
		})
		require.NoError(t, err)
		assert.Equal(t, "APIs and integrations", updated.Description)
		assert.InDelta(t, 210.00, updated.TotalCost, 0.001)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.UpdatePricing(ctx, 555, pricing.UpdateInput{
			RatePerHour: floatPtr(1),
		})
		require.ErrorIs(t, err, pricing.ErrPricingNotFound)
		assert.Contains(t, err.Error(), "555")
	})
}

func TestDeletePricing(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreatePricing(ctx, pricing.CreateInput{
		Service:        "Temporary offer",
		Description:    "soon removed",
		RatePerHour:    floatPtr(10),
		EstimatedHours: floatPtr(1),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeletePricing(ctx, created.ID))

	_, err = service.GetPricingByID(ctx, created.ID)
	assert.ErrorIs(t, err, pricing.ErrPricingNotFound)

	assert.ErrorIs(t, service.DeletePricing(ctx, created.ID), pricing.ErrPricingNotFound)
}
