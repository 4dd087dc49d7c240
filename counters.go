package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Chaves dos contadores efêmeros
const (
	orderCountKey   = "order_count"
	productViewsKey = "product_views"
)

// CounterStore abstrai os contadores efêmeros best-effort. Nenhuma
// decisão de correção pode depender destes valores: eles podem divergir
// das contagens autoritativas do Postgres.
type CounterStore interface {
	// Ping verifica a conectividade com o store
	Ping(ctx context.Context) error

	// IncrOrderCount incrementa o contador aproximado de pedidos
	IncrOrderCount(ctx context.Context) (int64, error)

	// IncrProductViews incrementa o contador de visualizações do catálogo
	IncrProductViews(ctx context.Context) (int64, error)

	// OrderCount lê o contador aproximado de pedidos
	OrderCount(ctx context.Context) (string, error)

	// ProductViews lê o contador de visualizações
	ProductViews(ctx context.Context) (string, error)
}

// RedisCounterStore implementa CounterStore usando Redis
type RedisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore cria o cliente Redis com timeout de conexão
// curto: o caminho autoritativo nunca espera o Redis
func NewRedisCounterStore(addr string) *RedisCounterStore {
	return &RedisCounterStore{
		client: redis.NewClient(&redis.Options{
			Addr:        addr,
			DialTimeout: 2 * time.Second,
			ReadTimeout: 2 * time.Second,
		}),
	}
}

// Ping verifica a conectividade com o store
func (s *RedisCounterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// IncrOrderCount incrementa o contador aproximado de pedidos
func (s *RedisCounterStore) IncrOrderCount(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, orderCountKey).Result()
}

// IncrProductViews incrementa o contador de visualizações do catálogo
func (s *RedisCounterStore) IncrProductViews(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, productViewsKey).Result()
}

// OrderCount lê o contador aproximado de pedidos
func (s *RedisCounterStore) OrderCount(ctx context.Context) (string, error) {
	return s.counter(ctx, orderCountKey)
}

// ProductViews lê o contador de visualizações
func (s *RedisCounterStore) ProductViews(ctx context.Context) (string, error) {
	return s.counter(ctx, productViewsKey)
}

func (s *RedisCounterStore) counter(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
