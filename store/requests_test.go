package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/models"
)

func testRequest(number string) models.ServiceRequest {
	now := time.Now().UTC()
	return models.ServiceRequest{
		ID:            uuid.Must(uuid.NewV7()),
		RequestNumber: number,
		Type:          models.RequestInspection,
		OptionID:      "site-inspection",
		Status:        models.RequestPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRequestsLifecycle(t *testing.T) {
	stores, _ := newTestStores(t)
	request := testRequest("REQ-000001")

	done, err := stores.Requests.Create(request)
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	confirmed, done, err := stores.Requests.SetStatus(request.ID, models.RequestConfirmed)
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.Equal(t, models.RequestConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)

	declined, done, err := stores.Requests.SetStatus(request.ID, models.RequestDeclined)
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.Equal(t, models.RequestDeclined, declined.Status)
	require.NotNil(t, declined.DeclinedAt)
	// The confirmation stamp survives a later decline.
	require.NotNil(t, declined.ConfirmedAt)

	_, _, err = stores.Requests.SetStatus(uuid.Must(uuid.NewV7()), models.RequestConfirmed)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestsNewestFirst(t *testing.T) {
	stores, _ := newTestStores(t)

	for _, n := range []string{"REQ-000001", "REQ-000002"} {
		done, err := stores.Requests.Create(testRequest(n))
		require.NoError(t, err)
		require.NoError(t, Wait(done))
	}

	requests, err := stores.Requests.Requests()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "REQ-000002", requests[0].RequestNumber)
}
