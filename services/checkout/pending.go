package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"grandstay/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pendingTTL bounds how long an unresolved checkout can be resumed. Long
// enough to cover a slow external approval page, short enough that stale
// drafts do not pile up.
const pendingTTL = 24 * time.Hour

// PendingStore is the durable single-slot holding area for an in-flight
// checkout. One checkout may be pending per session; a new save overwrites a
// prior unresolved one rather than queueing behind it.
type PendingStore interface {
	// Save writes the authoritative pending record, replacing any prior one.
	Save(ctx context.Context, sessionID string, record models.PendingRecoveryRecord) error
	// Snapshot is the opportunistic page-unload write. It dedups against an
	// existing unresolved record for the same first line item + guest email
	// and never overwrites a deliberate redirect save.
	Snapshot(ctx context.Context, sessionID string, draft models.CheckoutDraft) error
	// Load returns the pending record, or nil when the slot is empty.
	Load(ctx context.Context, sessionID string) (*models.PendingRecoveryRecord, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisPendingStore implements PendingStore on a Redis slot per session.
type RedisPendingStore struct {
	Client *redis.Client
	Logger *zap.Logger
}

func pendingKey(sessionID string) string {
	return "checkout:pending:" + sessionID
}

// Save writes the record as the one authoritative pending slot for the session.
func (s *RedisPendingStore) Save(ctx context.Context, sessionID string, record models.PendingRecoveryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.SavedAt = time.Now()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal pending record: %w", err)
	}
	if err := s.Client.Set(ctx, pendingKey(sessionID), data, pendingTTL).Err(); err != nil {
		return fmt.Errorf("failed to store pending record: %w", err)
	}
	return nil
}

// Snapshot saves a best-effort crash-recovery draft. Skipped when an
// unresolved record already covers the same line item and guest email, so
// repeated unloads do not accumulate duplicate partial drafts.
func (s *RedisPendingStore) Snapshot(ctx context.Context, sessionID string, draft models.CheckoutDraft) error {
	existing, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Source == "redirect" {
			// A deliberate pre-navigation save always wins.
			return nil
		}
		if len(existing.Draft.Items) > 0 && len(draft.Items) > 0 &&
			existing.Draft.Items[0].ID == draft.Items[0].ID &&
			existing.Draft.Guest.Email == draft.Guest.Email {
			return nil
		}
	}

	return s.Save(ctx, sessionID, models.PendingRecoveryRecord{
		Draft:  draft,
		Source: "unload",
	})
}

// Load returns the pending record for the session, nil when absent.
func (s *RedisPendingStore) Load(ctx context.Context, sessionID string) (*models.PendingRecoveryRecord, error) {
	data, err := s.Client.Get(ctx, pendingKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending record: %w", err)
	}

	var record models.PendingRecoveryRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to parse pending record: %w", err)
	}
	return &record, nil
}

// Clear empties the slot once the checkout resolves either way.
func (s *RedisPendingStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, pendingKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to clear pending record", zap.String("sessionId", sessionID), zap.Error(err))
		return err
	}
	return nil
}
