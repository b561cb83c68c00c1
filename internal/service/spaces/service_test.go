package spaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/ptr"
)

type mapCache struct {
	items map[int64]*domain.Space
	hits  int
}

func newMapCache() *mapCache { return &mapCache{items: map[int64]*domain.Space{}} }

func (c *mapCache) Get(_ context.Context, id int64) (*domain.Space, bool) {
	s, ok := c.items[id]
	if ok {
		c.hits++
	}
	return s, ok
}

func (c *mapCache) Set(_ context.Context, s *domain.Space) {
	cp := *s
	c.items[s.ID] = &cp
}

func (c *mapCache) Invalidate(_ context.Context, id int64) { delete(c.items, id) }

func newService(t *testing.T) (*Service, *mapCache) {
	t.Helper()
	db := storagetest.NewDB(t)
	cache := newMapCache()
	return NewService(spaceRepo.NewRepository(db), cache, logger.Discard()), cache
}

func TestService_Lifecycle(t *testing.T) {
	svc, cache := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateSpaceRequest{
		Name: " Padel 1 ", Capacity: 4, CostPerHour: 18.5, IsReservable: true, Category: "sports",
	})
	require.NoError(t, err)
	assert.Equal(t, "Padel 1", created.Name)
	assert.True(t, created.IsAvailable)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 0, cache.hits)

	_, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits, "second read served from cache")

	updated, err := svc.Update(ctx, created.ID, &models.UpdateSpaceRequest{
		Name: "Padel 1 (covered)", Capacity: 4, CostPerHour: 22, IsReservable: false, IsAvailable: true, Category: "sports",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsReservable)
	assert.NotContains(t, cache.items, created.ID, "update invalidates cache")

	got, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 22.0, got.CostPerHour)

	require.NoError(t, svc.Delete(ctx, created.ID))
	got, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable, "soft delete keeps the row")
}

func TestService_List(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, req := range []models.CreateSpaceRequest{
		{Name: "Court", Capacity: 4, Category: "sports", IsReservable: true},
		{Name: "Lounge", Capacity: 30, Category: "leisure"},
	} {
		req := req
		_, err := svc.Create(ctx, &req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, &models.ListSpacesRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Spaces, 2)

	leisure, err := svc.List(ctx, &models.ListSpacesRequest{Category: ptr.Ptr("leisure")})
	require.NoError(t, err)
	require.Len(t, leisure.Spaces, 1)
	assert.Equal(t, "Lounge", leisure.Spaces[0].Name)

	_, err = svc.List(ctx, &models.ListSpacesRequest{Category: ptr.Ptr("pool")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Errors(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateSpaceRequest
	}{
		{"empty name", models.CreateSpaceRequest{Name: " ", Capacity: 1, Category: "sports"}},
		{"zero capacity", models.CreateSpaceRequest{Name: "A", Capacity: 0, Category: "sports"}},
		{"negative cost", models.CreateSpaceRequest{Name: "A", Capacity: 1, CostPerHour: -1, Category: "sports"}},
		{"unknown category", models.CreateSpaceRequest{Name: "A", Capacity: 1, Category: "spa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 404), domain.ErrNotFound)

	_, err = svc.Update(ctx, 404, &models.UpdateSpaceRequest{Name: "A", Capacity: 1, Category: "sports"})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}
