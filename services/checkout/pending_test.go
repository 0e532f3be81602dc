package checkout

import (
	"context"
	"encoding/json"
	"testing"

	"grandstay/models"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func draftWith(itemID, email string) models.CheckoutDraft {
	return models.CheckoutDraft{
		Guest: models.GuestInfo{Name: "Ada Mwangi", Email: email, Phone: "+254700000001"},
		Items: []models.ServiceItem{
			models.NewRoomItem(itemID, "Deluxe King", models.RoomDetails{NightlyPrice: 180}),
		},
		Currency: "USD",
	}
}

func TestPendingStoreLoadEmptySlot(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	mock.ExpectGet(pendingKey("sess-1")).RedisNil()

	record, err := store.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingStoreSaveRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	record := models.PendingRecoveryRecord{
		ID:     "rec-1",
		Draft:  draftWith("room-1", "ada@example.com"),
		Source: "redirect",
	}

	mock.CustomMatch(func(expected, actual []interface{}) error {
		return nil
	}).ExpectSet(pendingKey("sess-1"), nil, pendingTTL).SetVal("OK")

	err := store.Save(context.Background(), "sess-1", record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSnapshotNeverOverwritesRedirectSave(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	existing := models.PendingRecoveryRecord{
		ID:     "rec-1",
		Draft:  draftWith("room-1", "ada@example.com"),
		Source: "redirect",
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	mock.ExpectGet(pendingKey("sess-1")).SetVal(string(data))

	// No Set expectation: the snapshot must be skipped entirely.
	err = store.Snapshot(context.Background(), "sess-1", draftWith("room-2", "other@example.com"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSnapshotDedupsSameItemAndEmail(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	existing := models.PendingRecoveryRecord{
		ID:     "rec-1",
		Draft:  draftWith("room-1", "ada@example.com"),
		Source: "unload",
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	mock.ExpectGet(pendingKey("sess-1")).SetVal(string(data))

	err = store.Snapshot(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingSnapshotWritesWhenSlotEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	mock.ExpectGet(pendingKey("sess-1")).RedisNil()
	mock.CustomMatch(func(expected, actual []interface{}) error {
		return nil
	}).ExpectSet(pendingKey("sess-1"), nil, pendingTTL).SetVal("OK")

	err := store.Snapshot(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingClear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &RedisPendingStore{Client: db, Logger: zap.NewNop()}

	mock.ExpectDel(pendingKey("sess-1")).SetVal(1)

	err := store.Clear(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
