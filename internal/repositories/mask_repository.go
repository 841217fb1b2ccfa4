package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const maskedProductsKey = "deleted-static-products"

// MaskRepository remembers which bundled static products an admin deleted.
// The set only grows; there is no undelete.
type MaskRepository interface {
	Mask(ctx context.Context, id string) error
	MaskedIDs(ctx context.Context) (map[string]struct{}, error)
}

type maskRepository struct {
	client *redis.Client
}

func NewMaskRepo(client *redis.Client) MaskRepository {
	return &maskRepository{client: client}
}

func (r *maskRepository) Mask(ctx context.Context, id string) error {
	if err := r.client.SAdd(ctx, maskedProductsKey, id).Err(); err != nil {
		return fmt.Errorf("failed to mask product %s: %w", id, err)
	}

	return nil
}

func (r *maskRepository) MaskedIDs(ctx context.Context) (map[string]struct{}, error) {
	members, err := r.client.SMembers(ctx, maskedProductsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read masked products: %w", err)
	}

	ids := make(map[string]struct{}, len(members))
	for _, id := range members {
		ids[id] = struct{}{}
	}

	return ids, nil
}
