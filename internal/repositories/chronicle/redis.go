package chronicle

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-caravan/internal/redis"
)

const keyPrefix = "chronicle:"

// maxAppendAttempts bounds retries when another writer bumps the sequence
// between our read and our transaction
const maxAppendAttempts = 50

// RedisConfig contains configuration for the Redis chronicle repository
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps entries; defaults to the system clock
	Clock clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed chronicle. Each session is a list of JSON
// entries under chronicle:<session>, with its sequence counter kept beside
// it under chronicle:<session>:seq.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func listKey(sessionID string) string {
	return keyPrefix + sessionID
}

func seqKey(sessionID string) string {
	return keyPrefix + sessionID + ":seq"
}

func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}

	seqK := seqKey(input.SessionID)
	listK := listKey(input.SessionID)

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		var entry *Entry
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			last, err := tx.Get(ctx, seqK).Int64()
			if err != nil && !errors.Is(err, redis.Nil) {
				return err
			}

			entry = &Entry{
				Seq:        last + 1,
				Day:        input.Day,
				Level:      input.Level,
				Text:       input.Text,
				RecordedAt: r.clock.Now().UTC(),
			}
			data, err := json.Marshal(entry)
			if err != nil {
				return errors.Wrap(err, "failed to marshal chronicle entry")
			}

			// Sequence and list move together so list position always matches seq
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, seqK, entry.Seq, 0)
				pipe.RPush(ctx, listK, data)
				return nil
			})
			return err
		}, seqK)

		if err == nil {
			return &AppendOutput{Entry: entry}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, errors.Wrapf(err, "failed to append to session %s", input.SessionID)
	}

	return nil, errors.Unavailablef("session %s is contended, gave up after %d attempts", input.SessionID, maxAppendAttempts)
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSession(input.SessionID); err != nil {
		return nil, err
	}
	start, stop, err := window(input)
	if err != nil {
		return nil, err
	}

	key := listKey(input.SessionID)

	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count session %s", input.SessionID)
	}

	raw, err := r.client.LRange(ctx, key, int64(start), int64(stop)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read session %s", input.SessionID)
	}

	out := &ListOutput{Total: int(total)}
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal chronicle entry")
		}
		out.Entries = append(out.Entries, &entry)
	}
	return out, nil
}
