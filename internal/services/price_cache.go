package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	priceKeyPrefix      = "price_"
	redisPriceKeyPrefix = "walletboard:"
)

func priceKey(address string) string {
	return priceKeyPrefix + strings.ToLower(address)
}

// MemoryPriceCache is the in-process price tier.
type MemoryPriceCache struct {
	prices *cache.Cache
}

func NewMemoryPriceCache(defaultTTL, cleanupInterval time.Duration) PriceCacheInterface {
	return &MemoryPriceCache{
		prices: cache.New(defaultTTL, cleanupInterval),
	}
}

func (c *MemoryPriceCache) Get(_ context.Context, address string) (decimal.Decimal, bool, error) {
	value, found := c.prices.Get(priceKey(address))
	if !found {
		return decimal.Zero, false, nil
	}

	price, ok := value.(decimal.Decimal)
	if !ok {
		return decimal.Zero, false, nil
	}
	return price, true, nil
}

func (c *MemoryPriceCache) GetMany(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error) {
	found := make(map[string]decimal.Decimal, len(addresses))
	for _, address := range addresses {
		if price, ok, _ := c.Get(ctx, address); ok {
			found[strings.ToLower(address)] = price
		}
	}
	return found, nil
}

func (c *MemoryPriceCache) Set(_ context.Context, address string, price decimal.Decimal, ttl time.Duration) error {
	c.prices.Set(priceKey(address), price, ttl)
	return nil
}

func (c *MemoryPriceCache) SetMany(ctx context.Context, prices map[string]decimal.Decimal, ttl time.Duration) error {
	for address, price := range prices {
		if err := c.Set(ctx, address, price, ttl); err != nil {
			return err
		}
	}
	return nil
}

// RedisPriceCache shares prices between instances.
type RedisPriceCache struct {
	client redis.UniversalClient
}

func NewRedisPriceCache(client redis.UniversalClient) PriceCacheInterface {
	return &RedisPriceCache{client: client}
}

func (c *RedisPriceCache) Get(ctx context.Context, address string) (decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, redisPriceKeyPrefix+priceKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read cached price: %w", err)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, nil
	}
	return price, true, nil
}

func (c *RedisPriceCache) GetMany(ctx context.Context, addresses []string) (map[string]decimal.Decimal, error) {
	found := make(map[string]decimal.Decimal, len(addresses))
	if len(addresses) == 0 {
		return found, nil
	}

	keys := make([]string, len(addresses))
	for i, address := range addresses {
		keys[i] = redisPriceKeyPrefix + priceKey(address)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return found, fmt.Errorf("failed to read cached prices: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		found[strings.ToLower(addresses[i])] = price
	}
	return found, nil
}

func (c *RedisPriceCache) Set(ctx context.Context, address string, price decimal.Decimal, ttl time.Duration) error {
	if err := c.client.Set(ctx, redisPriceKeyPrefix+priceKey(address), price.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache price: %w", err)
	}
	return nil
}

func (c *RedisPriceCache) SetMany(ctx context.Context, prices map[string]decimal.Decimal, ttl time.Duration) error {
	if len(prices) == 0 {
		return nil
	}

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for address, price := range prices {
			pipe.Set(ctx, redisPriceKeyPrefix+priceKey(address), price.String(), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache prices: %w", err)
	}
	return nil
}
