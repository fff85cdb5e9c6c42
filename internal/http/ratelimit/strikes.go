package ratelimit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// StrikeLog records rejected requests in redis so repeat offenders can
// be reviewed across restarts. A nil StrikeLog is valid and records
// nothing.
type StrikeLog struct {
	rdb *redis.Client
}

func NewStrikeLog(rdb *redis.Client) *StrikeLog {
	return &StrikeLog{rdb: rdb}
}

type StrikeEntry struct {
	IP      string    `json:"ip"`
	Route   string    `json:"route"`
	Strikes int64     `json:"strikes"`
	Time    time.Time `json:"time"`
}

const (
	strikeCountPrefix = "ratelimit:strikes:"
	strikeLogKey      = "ratelimit:strikelog"
	strikeCountTTL    = 24 * time.Hour
)

// Record bumps the offender's strike counter and appends an entry to
// the shared strike log. Returns the strike count after bumping.
func (l *StrikeLog) Record(ctx context.Context, ip, route string) int64 {
	if l == nil || l.rdb == nil {
		return 0
	}

	strikes, err := l.rdb.Incr(ctx, strikeCountPrefix+ip).Result()
	if err != nil {
		return 0
	}
	l.rdb.Expire(ctx, strikeCountPrefix+ip, strikeCountTTL)

	entry := StrikeEntry{IP: ip, Route: route, Strikes: strikes, Time: time.Now()}
	data, _ := json.Marshal(entry)
	l.rdb.RPush(ctx, strikeLogKey, data)

	return strikes
}

// Strikes returns the offender's current strike count.
func (l *StrikeLog) Strikes(ctx context.Context, ip string) int64 {
	if l == nil || l.rdb == nil {
		return 0
	}
	strikes, err := l.rdb.Get(ctx, strikeCountPrefix+ip).Int64()
	if err != nil {
		return 0
	}
	return strikes
}
