package resource

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/util/numberutils"
)

// Decorator enriches a record before it is returned, e.g. with a status badge.
type Decorator[T any] func(*T)

type resourceUseCase[T any, F any] struct {
	key       cachekey.Key
	gateway   api.ResourceGateway[T, F]
	cache     cache.QueryCache
	decorator Decorator[T]
}

// NewResourceUseCase creates the use case of the resource cached under key.
// decorator may be nil.
func NewResourceUseCase[T any, F any](key cachekey.Key, gateway api.ResourceGateway[T, F], queryCache cache.QueryCache, decorator Decorator[T]) UseCase[T, F] {
	return &resourceUseCase[T, F]{
		key:       key,
		gateway:   gateway,
		cache:     queryCache,
		decorator: decorator,
	}
}

func (uc *resourceUseCase[T, F]) Key() cachekey.Key {
	return uc.key
}

// List returns one page with its pagination view. A page past the end (the list shrank
// since the caller last saw it) is clamped to the last page and fetched again once.
func (uc *resourceUseCase[T, F]) List(ctx context.Context, query model.ListQuery) (*model.Page[T], error) {
	envelope, err := uc.fetchList(ctx, query)
	if err != nil {
		return nil, err
	}

	state := envelope.Meta.StateFor(query)
	if query.Page > state.LastPage && state.Total > 0 {
		log.Info(msg.GetMessage("resource.clamp", query.Page, uc.key, state.LastPage))
		query.Page = state.LastPage
		if envelope, err = uc.fetchList(ctx, query); err != nil {
			return nil, err
		}
		state = envelope.Meta.StateFor(query)
	}

	uc.decorate(envelope.Data)
	return model.NewPage(envelope.Data, state), nil
}

func (uc *resourceUseCase[T, F]) fetchList(ctx context.Context, query model.ListQuery) (*model.ListEnvelope[T], error) {
	entry := cachekey.ListEntry(query.Params())

	var cached model.ListEnvelope[T]
	if uc.lookup(ctx, entry, &cached) {
		return &cached, nil
	}

	envelope, err := uc.gateway.List(ctx, query)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, entry, envelope)
	return envelope, nil
}

func (uc *resourceUseCase[T, F]) Get(ctx context.Context, id int64) (*T, error) {
	entry := cachekey.DetailEntry(numberutils.Itoa(int(id)))

	var cached T
	if uc.lookup(ctx, entry, &cached) {
		uc.decorateOne(&cached)
		return &cached, nil
	}

	record, err := uc.gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, entry, record)
	uc.decorateOne(record)
	return record, nil
}

func (uc *resourceUseCase[T, F]) Create(ctx context.Context, form F) (*T, error) {
	if err := model.ValidateForm(form); err != nil {
		return nil, err
	}

	record, err := uc.gateway.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, cachekey.Create)
	uc.decorateOne(record)
	return record, nil
}

func (uc *resourceUseCase[T, F]) Update(ctx context.Context, id int64, form F) (*T, error) {
	if err := model.ValidateForm(form); err != nil {
		return nil, err
	}

	record, err := uc.gateway.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, cachekey.Update)
	uc.decorateOne(record)
	return record, nil
}

func (uc *resourceUseCase[T, F]) Delete(ctx context.Context, id int64) error {
	if err := uc.gateway.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx, cachekey.Delete)
	return nil
}

func (uc *resourceUseCase[T, F]) Warm(ctx context.Context, perPage int) error {
	envelope, err := uc.gateway.List(ctx, model.ListQuery{Page: 1, PerPage: perPage})
	if err != nil {
		return fmt.Errorf("warm %s: %w", uc.key, err)
	}
	uc.store(ctx, cachekey.ListEntry(model.ListQuery{Page: 1, PerPage: perPage}.Params()), envelope)
	return nil
}

// invalidate drops the cached reads made stale by a mutation. Failures are logged only:
// the write already succeeded and entries expire on their own.
func (uc *resourceUseCase[T, F]) invalidate(ctx context.Context, op cachekey.Op) {
	mutation := cachekey.Mutation{Key: uc.key, Op: op}
	keys := cachekey.Affected(mutation)

	if _, err := uc.cache.Invalidate(ctx, keys...); err != nil {
		log.Error(msg.GetMessage("resource.cache.invalidate-failed", keys, err))
		return
	}
	log.Debug(msg.GetMessage("resource.cache.invalidated", keys, mutation))
}

// lookup reports whether entry was served from the cache. Entries that no longer decode
// are evicted so the next read repopulates them.
func (uc *resourceUseCase[T, F]) lookup(ctx context.Context, entry string, dest any) bool {
	err := uc.cache.Get(ctx, uc.key, entry, dest)
	switch {
	case err == nil:
		log.Debug(msg.GetMessage("resource.cache.hit", string(uc.key)+"::"+entry))
		return true
	case errors.Is(err, cache.ErrMiss):
	case errors.Is(err, cache.ErrCorrupt):
		log.Warn(err.Error(), zap.String("cache", string(uc.key)))
		if err := uc.cache.Evict(ctx, uc.key, entry); err != nil {
			log.Warn(msg.GetMessage("resource.cache.write-failed", string(uc.key)+"::"+entry, err))
		}
	default:
		log.Warn(err.Error(), zap.String("cache", string(uc.key)))
	}
	return false
}

func (uc *resourceUseCase[T, F]) store(ctx context.Context, entry string, value any) {
	if err := uc.cache.Set(ctx, uc.key, entry, value); err != nil {
		log.Warn(msg.GetMessage("resource.cache.write-failed", string(uc.key)+"::"+entry, err))
	}
}

func (uc *resourceUseCase[T, F]) decorate(records []T) {
	if uc.decorator == nil {
		return
	}
	for i := range records {
		uc.decorator(&records[i])
	}
}

func (uc *resourceUseCase[T, F]) decorateOne(record *T) {
	if uc.decorator != nil && record != nil {
		uc.decorator(record)
	}
}
