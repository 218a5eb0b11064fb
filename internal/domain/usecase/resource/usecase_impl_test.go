package resource

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/domain/badge"
	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/redis"
)

// fakeStockGateway keeps stocks in memory and counts backend calls.
type fakeStockGateway struct {
	mu     sync.Mutex
	stocks []entity.Stock
	lists  int
	gets   int
}

func (g *fakeStockGateway) Name() string { return "stocks" }

func (g *fakeStockGateway) List(_ context.Context, query model.ListQuery) (*model.ListEnvelope[entity.Stock], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lists++

	total := len(g.stocks)
	lastPage := (total + query.PerPage - 1) / query.PerPage
	if lastPage == 0 {
		lastPage = 1
	}
	start := min((query.Page-1)*query.PerPage, total)
	end := min(start+query.PerPage, total)

	return &model.ListEnvelope[entity.Stock]{
		Data: append([]entity.Stock{}, g.stocks[start:end]...),
		Meta: model.Meta{CurrentPage: query.Page, PerPage: query.PerPage, Total: total, LastPage: lastPage},
	}, nil
}

func (g *fakeStockGateway) Get(_ context.Context, id int64) (*entity.Stock, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gets++
	for _, s := range g.stocks {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (g *fakeStockGateway) Create(_ context.Context, form model.StockForm) (*entity.Stock, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	stock := entity.Stock{
		ID:              int64(len(g.stocks) + 1),
		ItemID:          form.ItemID,
		WarehouseID:     form.WarehouseID,
		Quantity:        form.Quantity,
		MinimumQuantity: form.MinimumQuantity,
	}
	g.stocks = append(g.stocks, stock)
	return &stock, nil
}

func (g *fakeStockGateway) Update(_ context.Context, id int64, form model.StockForm) (*entity.Stock, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.stocks {
		if g.stocks[i].ID == id {
			g.stocks[i].Quantity = form.Quantity
			g.stocks[i].MinimumQuantity = form.MinimumQuantity
			updated := g.stocks[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (g *fakeStockGateway) Delete(_ context.Context, id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.stocks {
		if g.stocks[i].ID == id {
			g.stocks = append(g.stocks[:i], g.stocks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seedStocks(n int) []entity.Stock {
	stocks := make([]entity.Stock, 0, n)
	for i := 1; i <= n; i++ {
		stocks = append(stocks, entity.Stock{ID: int64(i), ItemID: int64(i), WarehouseID: 1, Quantity: i, MinimumQuantity: 5})
	}
	return stocks
}

func newTestUseCase(t *testing.T, gateway *fakeStockGateway) (UseCase[entity.Stock, model.StockForm], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	queryCache := cache.NewRedisQueryCache(client, time.Second)
	return NewResourceUseCase[entity.Stock, model.StockForm](cachekey.Stocks, gateway, queryCache, StockBadge), mr
}

func TestList_DerivesPaginationAndBadges(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(31)}
	uc, _ := newTestUseCase(t, gateway)

	page, err := uc.List(context.Background(), model.ListQuery{Page: 2, PerPage: 15})
	require.NoError(t, err)

	require.Len(t, page.Content, 15)
	assert.Equal(t, 3, page.State.LastPage)
	assert.Equal(t, 16, page.Pagination.Label.RangeStart)
	assert.Equal(t, 30, page.Pagination.Label.RangeEnd)
	assert.True(t, page.Pagination.CanGoNext)
	require.NotNil(t, page.Content[0].Badge)
	assert.Equal(t, badge.Success, page.Content[0].Badge.Variant)
}

func TestList_ServesRepeatedQueriesFromCache(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(20)}
	uc, mr := newTestUseCase(t, gateway)
	ctx := context.Background()

	_, err := uc.List(ctx, model.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	page, err := uc.List(ctx, model.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.lists)
	assert.Len(t, page.Content, 10)
	assert.True(t, mr.Exists("stocks::list:page=1&per_page=10"))
}

func TestList_ClampsPagePastTheEnd(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(25)}
	uc, _ := newTestUseCase(t, gateway)

	page, err := uc.List(context.Background(), model.ListQuery{Page: 9, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, page.State.Page)
	assert.Len(t, page.Content, 5)
	assert.False(t, page.Pagination.CanGoNext)
	assert.Equal(t, 2, gateway.lists)
}

func TestList_EmptyResult(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeStockGateway{})

	page, err := uc.List(context.Background(), model.ListQuery{Page: 4, PerPage: 10})
	require.NoError(t, err)

	assert.Empty(t, page.Content)
	assert.True(t, page.Pagination.Label.Empty)
	assert.Equal(t, 1, page.State.Page)
}

func TestMutations_InvalidateAffectedKeys(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(3)}
	uc, mr := newTestUseCase(t, gateway)
	ctx := context.Background()

	_, err := uc.List(ctx, model.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	_, err = uc.Get(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, mr.Set("items::list:page=1&per_page=10", "{}"))
	require.NoError(t, mr.Set("patients::list:page=1&per_page=10", "{}"))

	_, err = uc.Update(ctx, 2, model.StockForm{ItemID: 2, WarehouseID: 1, Quantity: 1, MinimumQuantity: 5})
	require.NoError(t, err)

	assert.False(t, mr.Exists("stocks::list:page=1&per_page=10"))
	assert.False(t, mr.Exists("stocks::detail:2"))
	assert.True(t, mr.Exists("patients::list:page=1&per_page=10"))

	stock, err := uc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, stock.Quantity)
	assert.Equal(t, badge.Warning, stock.Badge.Variant)
	assert.Equal(t, 2, gateway.gets)
}

func TestGet_ReplacesCorruptEntry(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(3)}
	uc, mr := newTestUseCase(t, gateway)
	ctx := context.Background()

	require.NoError(t, mr.Set("stocks::detail:2", "{broken"))
	require.NoError(t, mr.Set("stocks::list:page=1&per_page=10", `{"data":"nope"}`))

	stock, err := uc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stock.ID)
	_, err = uc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.gets)

	page, err := uc.List(ctx, model.ListQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.Equal(t, 1, gateway.lists)

	cached, err := mr.Get("stocks::detail:2")
	require.NoError(t, err)
	assert.NotEqual(t, "{broken", cached)
}

func TestCreate_RejectsInvalidForm(t *testing.T) {
	gateway := &fakeStockGateway{}
	uc, _ := newTestUseCase(t, gateway)

	_, err := uc.Create(context.Background(), model.StockForm{Quantity: -1})
	var formErr *model.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Fields, "item_id")
	assert.Empty(t, gateway.stocks)
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeStockGateway{})
	assert.ErrorIs(t, uc.Delete(context.Background(), 5), ErrNotFound)
}

func TestWarm_FillsFirstPage(t *testing.T) {
	gateway := &fakeStockGateway{stocks: seedStocks(4)}
	uc, mr := newTestUseCase(t, gateway)

	require.NoError(t, uc.Warm(context.Background(), 15))
	assert.True(t, mr.Exists("stocks::list:page=1&per_page=15"))

	_, err := uc.List(context.Background(), model.ListQuery{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.lists)
}
