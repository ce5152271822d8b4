package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

type Config struct {
	Hosts    []string `yaml:"hosts"`
	ListKeys []string `yaml:"list_keys"`
}

// Source reads every list key as one sample. The ring routes each key to the shard holding it.
type Source struct {
	client   *redis.Ring
	listKeys []string
}

func New(ctx context.Context, config *Config) (*Source, error) {
	if len(config.Hosts) == 0 {
		return &Source{}, fmt.Errorf("hosts list cannot be empty")
	}

	if len(config.ListKeys) == 0 {
		return &Source{}, fmt.Errorf("list keys cannot be empty")
	}

	ringOpts := make(map[string]string)

	for i, addr := range config.Hosts {
		key := fmt.Sprintf("host%d", i+1)
		ringOpts[key] = addr
	}

	c := redis.NewRing(&redis.RingOptions{
		Addrs: ringOpts,
	})

	err := c.ForEachShard(ctx, func(ctx context.Context, shard *redis.Client) error {
		res := shard.Ping(ctx)
		err := res.Err()

		if err != nil {
			zap.S().Errorf("failed to connect to Redis instance: %v", shard.Options().Addr)
			return err
		}

		zap.S().Debugf("successfully connected to Redis instance: %v, result: %v", shard.Options().Addr, res.Val())
		return nil
	})

	if err != nil {
		_ = c.Close()
		return &Source{}, err
	}

	return &Source{
		client:   c,
		listKeys: config.ListKeys,
	}, nil
}

func (s *Source) Kind() string {
	return "redis"
}

func (s *Source) Load(ctx context.Context) (*stat.NamedSamples, error) {
	named := stat.NewNamedSamples()

	for _, key := range s.listKeys {
		values, err := s.client.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, err
		}

		sample := make([]float64, 0, len(values))

		for i, v := range values {
			f, err := helper.ParseFloat(v)
			if err != nil {
				return nil, fmt.Errorf("%v[%d]: %w", key, i, err)
			}

			sample = append(sample, f)
		}

		zap.S().Debugf("read %d values from list %v", len(sample), key)
		named.Add(key, sample)
	}

	return named, nil
}

func (s *Source) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}
