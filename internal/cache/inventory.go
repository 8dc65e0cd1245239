package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	FeedKeyPrefix = "feed:%d:v%d"

	feedVersionKey = "feed:version"
)

const (
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// FeedKey identifies a reader's cached feed. The global feed version is part
// of the key, so bumping the version invalidates every cached feed at once.
func FeedKey(readerID uint, version int64) string {
	return fmt.Sprintf(FeedKeyPrefix, readerID, version)
}

// FeedVersion returns the current global feed version. Missing key or a
// disabled cache reads as version 0.
func FeedVersion(ctx context.Context) int64 {
	if client == nil {
		return 0
	}
	v, err := client.Get(ctx, feedVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// BumpFeedVersion invalidates all cached feeds. Called when an article is
// approved, since approval changes every feed that subscribes to the
// article's publisher or author.
func BumpFeedVersion(ctx context.Context) {
	if client == nil {
		return
	}
	client.Incr(ctx, feedVersionKey)
}

// InvalidateFeed drops one reader's cached feed at the current version.
// Called when that reader's subscription set changes; other readers' entries
// stay valid.
func InvalidateFeed(ctx context.Context, readerID uint) {
	Invalidate(ctx, FeedKey(readerID, FeedVersion(ctx)))
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
