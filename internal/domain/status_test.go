package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_Pipeline(t *testing.T) {
	pipeline := []OperationStatus{
		StatusPending, StatusAssigned, StatusCollecting, StatusCollected,
		StatusValidated, StatusDeliveredToFX, StatusFXProcessing, StatusCompleted,
	}

	for i := 0; i < len(pipeline)-1; i++ {
		assert.True(t, pipeline[i].CanTransition(pipeline[i+1]),
			"%s -> %s should be allowed", pipeline[i], pipeline[i+1])
	}

	// No skipping ahead, no going back.
	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusPending.CanTransition(StatusCollecting))
	assert.False(t, StatusCollected.CanTransition(StatusCollecting))
	assert.False(t, StatusFXProcessing.CanTransition(StatusPending))
}

func TestCanTransition_Cancellation(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusAssigned.CanTransition(StatusCancelled))

	for _, s := range []OperationStatus{StatusCollecting, StatusCollected, StatusValidated, StatusDeliveredToFX, StatusFXProcessing} {
		assert.False(t, s.CanTransition(StatusCancelled), "%s -> Cancelled should be rejected", s)
	}
}

func TestCanTransition_ErrorFromAnywhereActive(t *testing.T) {
	for _, s := range []OperationStatus{StatusPending, StatusAssigned, StatusCollecting, StatusCollected, StatusValidated, StatusDeliveredToFX, StatusFXProcessing} {
		assert.True(t, s.CanTransition(StatusError), "%s -> Error should be allowed", s)
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []OperationStatus{StatusCompleted, StatusCancelled, StatusError} {
		require.True(t, terminal.IsTerminal())
		for _, to := range AllStatuses {
			assert.False(t, terminal.CanTransition(to), "%s -> %s should be rejected", terminal, to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("Delivered to FX")
	require.NoError(t, err)
	assert.Equal(t, StatusDeliveredToFX, got)

	_, err = ParseStatus("In Limbo")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	// Labels are case-sensitive: they are stored verbatim.
	_, err = ParseStatus("pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestClientRecordOperation_Promotion(t *testing.T) {
	client := &Client{
		Tier:            TierRegular,
		TotalOperations: 4,
		TotalVolume:     dec("20000"),
	}

	client.RecordOperation(dec("6000"))

	assert.Equal(t, int64(5), client.TotalOperations)
	assert.True(t, client.TotalVolume.Equal(dec("26000")))
	assert.Equal(t, TierFrequent, client.Tier)
}

func TestClientRecordOperation_NoPromotionBelowThresholds(t *testing.T) {
	// Enough operations but not enough volume.
	client := &Client{Tier: TierRegular, TotalOperations: 7, TotalVolume: dec("10000")}
	client.RecordOperation(dec("500"))
	assert.Equal(t, TierRegular, client.Tier)

	// Enough volume but not enough operations.
	client = &Client{Tier: TierRegular, TotalOperations: 2, TotalVolume: dec("40000")}
	client.RecordOperation(dec("500"))
	assert.Equal(t, TierRegular, client.Tier)
}
