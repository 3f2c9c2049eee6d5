package dbconn

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context, host string, username string, password string, isClustered bool) (redis.UniversalClient, error) {
	if host == "" {
		return nil, errors.New("REDIS_HOST environment variable not set")
	}

	var client redis.UniversalClient
	if isClustered {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    []string{host},
			Username: username,
			Password: password,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     host,
			Username: username,
			Password: password,
			DB:       0,
		})
	}

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
