package quote

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"swiftmove/models"
	"swiftmove/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Action is one typed event applied to a quote session. The wizard is
// forward-only: each action either completes the next step or rewinds to an
// earlier one, never skips ahead.
type Action interface {
	isAction()
}

// SetLocations records pickup and destination. Applying it again acts as an
// edit: downstream steps are cleared and the wizard rewinds.
type SetLocations struct {
	Start          string
	Destination    string
	MoveType       models.MoveType
	StartLat       *float64
	StartLng       *float64
	DestinationLat *float64
	DestinationLng *float64
}

// SetInventory records the inventory details.
type SetInventory struct {
	Details models.InventoryDetails
}

// SetSchedule records the chosen date and time slot.
type SetSchedule struct {
	Date string
	Time string
}

// QuotePriced marks the session as priced and bound to a persisted booking.
type QuotePriced struct {
	BookingID string
}

// CheckoutStarted marks the handoff to the payment provider.
type CheckoutStarted struct{}

// Completed marks the wizard finished.
type Completed struct{}

func (SetLocations) isAction()    {}
func (SetInventory) isAction()    {}
func (SetSchedule) isAction()     {}
func (QuotePriced) isAction()     {}
func (CheckoutStarted) isAction() {}
func (Completed) isAction()       {}

// SameLocation reports whether the two addresses are identical after
// trimming and lowercasing.
func SameLocation(start, destination string) bool {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return norm(start) == norm(destination)
}

// Advance is the pure transition function of the quote wizard. It returns
// the next session state, never mutating its input. Out-of-order actions
// fail with ErrInvalidStage; edits of earlier steps rewind the stage and
// clear everything downstream.
func Advance(s models.QuoteSession, a Action) (models.QuoteSession, error) {
	next := s
	now := time.Now()

	switch act := a.(type) {
	case SetLocations:
		if !s.Stage.Before(models.StagePaying) {
			return s, ErrInvalidStage
		}
		if strings.TrimSpace(act.Start) == "" || strings.TrimSpace(act.Destination) == "" {
			return s, ErrMissingLocation
		}
		if SameLocation(act.Start, act.Destination) {
			return s, ErrSameLocation
		}
		if !act.MoveType.Valid() {
			return s, ErrInvalidMoveType
		}
		next.StartLocation = act.Start
		next.DestinationLocation = act.Destination
		next.MoveType = act.MoveType
		next.StartLat, next.StartLng = act.StartLat, act.StartLng
		next.DestinationLat, next.DestinationLng = act.DestinationLat, act.DestinationLng
		next.Details = nil
		next.Date, next.Time = "", ""
		next.BookingID = ""
		next.Stage = models.StageInventory

	case SetInventory:
		if s.Stage.Before(models.StageInventory) || !s.Stage.Before(models.StagePaying) {
			return s, ErrInvalidStage
		}
		if !act.Details.Valid() {
			return s, ErrInvalidInventory
		}
		details := act.Details
		next.Details = &details
		next.Date, next.Time = "", ""
		next.BookingID = ""
		next.Stage = models.StageSchedule

	case SetSchedule:
		if s.Stage.Before(models.StageSchedule) || !s.Stage.Before(models.StagePaying) {
			return s, ErrInvalidStage
		}
		if act.Date == "" || act.Time == "" {
			return s, ErrInvalidStage
		}
		next.Date = act.Date
		next.Time = act.Time
		next.BookingID = ""
		next.Stage = models.StageSchedule

	case QuotePriced:
		if s.Stage != models.StageSchedule || s.Date == "" || s.Time == "" {
			return s, ErrInvalidStage
		}
		next.BookingID = act.BookingID
		next.Stage = models.StageQuoted

	case CheckoutStarted:
		if s.Stage != models.StageQuoted {
			return s, ErrInvalidStage
		}
		next.Stage = models.StagePaying

	case Completed:
		if s.Stage != models.StagePaying {
			return s, ErrInvalidStage
		}
		next.Stage = models.StageDone
	}

	next.UpdatedAt = now
	return next, nil
}

// SessionStore persists quote sessions for the life of the wizard.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.QuoteSession, error)
	Save(ctx context.Context, session *models.QuoteSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a SessionStore on the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.QuoteSessionTTL}
}

func (s *RedisSessionStore) key(id string) string {
	return "quoteSession:" + id
}

// Get loads a session, returning ErrSessionNotFound on miss.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.QuoteSession, error) {
	data, err := s.Client.Get(ctx, s.key(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save writes a session back, refreshing its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.QuoteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(session.ID), data, s.TTL).Err()
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.key(id)).Err()
}

// NewSession returns a fresh session at the location stage.
func NewSession() *models.QuoteSession {
	now := time.Now()
	return &models.QuoteSession{
		ID:        uuid.New().String(),
		Stage:     models.StageLocation,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
