package usecase

import (
	"context"
	"errors"
	"time"

	"go-rest-brewery/internal/converter"
	"go-rest-brewery/internal/delivery/dto"
	"go-rest-brewery/internal/domain/entity"
	"go-rest-brewery/internal/domain/repository"
	"go-rest-brewery/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBeerNotFound     = errors.New("beer not found")
	ErrBeerUpcExists    = errors.New("beer with this upc already exists")
	ErrInvalidBeerStyle = errors.New("invalid beer style")
)

// BeerUsecase is the beer store consumed by the HTTP gateway.
type BeerUsecase interface {
	ListBeers(ctx context.Context, query *dto.BeerListQuery) (*dto.BeerPagedList, error)
	GetByID(ctx context.Context, id uuid.UUID, showInventory bool) (*dto.BeerResponse, error)
	GetByUpc(ctx context.Context, upc string) (*dto.BeerResponse, error)
	SaveNewBeer(ctx context.Context, req *dto.CreateBeerRequest) (*dto.BeerResponse, error)
	UpdateBeer(ctx context.Context, id uuid.UUID, req *dto.UpdateBeerRequest) (*dto.BeerResponse, error)
	DeleteBeerByID(ctx context.Context, id uuid.UUID) error
}

type beerUsecase struct {
	log        *logrus.Logger
	beerRepo   repository.BeerRepository
	cache      service.BeerCache
	evictDelay time.Duration
}

// NewBeerUsecase returns the beer store. When evictDelay is positive every
// eviction is repeated once after that delay, so a read that filled the cache
// from a row it loaded before the write committed is stale for at most
// evictDelay instead of the cache TTL.
func NewBeerUsecase(log *logrus.Logger, beerRepo repository.BeerRepository, cache service.BeerCache, evictDelay time.Duration) BeerUsecase {
	if cache == nil {
		cache = service.NewNoopBeerCache()
	}
	return &beerUsecase{
		log:        log,
		beerRepo:   beerRepo,
		cache:      cache,
		evictDelay: evictDelay,
	}
}

func (u *beerUsecase) ListBeers(ctx context.Context, query *dto.BeerListQuery) (*dto.BeerPagedList, error) {
	if query == nil {
		query = dto.NewBeerListQuery()
	}

	page := query.PageNumber
	size := query.PageSize
	if page < 0 {
		page = dto.DefaultPageNumber
	}
	if size < 1 {
		size = dto.DefaultPageSize
	}
	if page > dto.MaxPageNumber(size) {
		page = dto.MaxPageNumber(size)
	}

	filter := &entity.BeerFilter{BeerName: query.BeerName}
	if query.BeerStyle != "" {
		style, err := entity.ParseBeerStyle(query.BeerStyle)
		if err != nil {
			return nil, ErrInvalidBeerStyle
		}
		filter.BeerStyle = style
	}

	beers, total, err := u.beerRepo.FindAll(ctx, filter, size, page*size)
	if err != nil {
		u.log.Warnf("Failed to list beers: %+v", err)
		return nil, err
	}

	content := converter.BeersToResponses(beers, query.ShowInventoryOnHand)
	return dto.NewBeerPagedList(content, page, size, total), nil
}

func (u *beerUsecase) GetByID(ctx context.Context, id uuid.UUID, showInventory bool) (*dto.BeerResponse, error) {
	beer, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.BeerToResponse(beer, showInventory), nil
}

func (u *beerUsecase) GetByUpc(ctx context.Context, upc string) (*dto.BeerResponse, error) {
	if cached, err := u.cache.GetByUpc(ctx, upc); err != nil {
		u.log.Warnf("Failed to read beer cache for upc %s: %+v", upc, err)
	} else if cached != nil {
		return converter.BeerToResponse(cached, true), nil
	}

	beer, err := u.beerRepo.FindByUpc(ctx, upc)
	if err != nil {
		u.log.Warnf("Failed to find beer by upc: %+v", err)
		return nil, err
	}
	if beer == nil {
		return nil, ErrBeerNotFound
	}

	u.cacheBeer(ctx, beer)
	return converter.BeerToResponse(beer, true), nil
}

func (u *beerUsecase) SaveNewBeer(ctx context.Context, req *dto.CreateBeerRequest) (*dto.BeerResponse, error) {
	if !entity.BeerStyle(req.BeerStyle).IsValid() {
		return nil, ErrInvalidBeerStyle
	}

	beer := converter.CreateRequestToBeer(req)
	if err := u.beerRepo.Create(ctx, beer); err != nil {
		u.log.Warnf("Failed to create beer: %+v", err)
		if errors.Is(err, repository.ErrDuplicateUpc) {
			return nil, ErrBeerUpcExists
		}
		return nil, err
	}

	return converter.BeerToResponse(beer, true), nil
}

func (u *beerUsecase) UpdateBeer(ctx context.Context, id uuid.UUID, req *dto.UpdateBeerRequest) (*dto.BeerResponse, error) {
	if !entity.BeerStyle(req.BeerStyle).IsValid() {
		return nil, ErrInvalidBeerStyle
	}

	beer, err := u.beerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find beer: %+v", err)
		return nil, err
	}
	if beer == nil {
		return nil, ErrBeerNotFound
	}

	// The old UPC key must go even when the UPC changes
	previous := *beer
	converter.ApplyUpdateRequest(beer, req)

	if err := u.beerRepo.Update(ctx, beer); err != nil {
		u.log.Warnf("Failed to update beer: %+v", err)
		switch {
		case errors.Is(err, repository.ErrDuplicateUpc):
			return nil, ErrBeerUpcExists
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrBeerNotFound
		}
		return nil, err
	}

	u.evictBeer(ctx, &previous)
	return converter.BeerToResponse(beer, true), nil
}

func (u *beerUsecase) DeleteBeerByID(ctx context.Context, id uuid.UUID) error {
	beer, err := u.beerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find beer: %+v", err)
		return err
	}
	if beer == nil {
		u.log.Debugf("Delete of unknown beer %s ignored", id)
		return nil
	}

	if _, err := u.beerRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete beer: %+v", err)
		return err
	}

	u.evictBeer(ctx, beer)
	return nil
}

func (u *beerUsecase) findByID(ctx context.Context, id uuid.UUID) (*entity.Beer, error) {
	if cached, err := u.cache.GetByID(ctx, id); err != nil {
		u.log.Warnf("Failed to read beer cache for %s: %+v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	beer, err := u.beerRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find beer: %+v", err)
		return nil, err
	}
	if beer == nil {
		return nil, ErrBeerNotFound
	}

	u.cacheBeer(ctx, beer)
	return beer, nil
}

// Cache failures never fail the request.
func (u *beerUsecase) cacheBeer(ctx context.Context, beer *entity.Beer) {
	if err := u.cache.Set(ctx, beer); err != nil {
		u.log.Warnf("Failed to cache beer %s: %+v", beer.ID, err)
	}
}

func (u *beerUsecase) evictBeer(ctx context.Context, beer *entity.Beer) {
	u.evictNow(ctx, beer)
	if u.evictDelay <= 0 {
		return
	}

	snapshot := *beer
	detached := context.WithoutCancel(ctx)
	time.AfterFunc(u.evictDelay, func() {
		u.evictNow(detached, &snapshot)
	})
}

func (u *beerUsecase) evictNow(ctx context.Context, beer *entity.Beer) {
	if err := u.cache.Evict(ctx, beer); err != nil {
		u.log.Warnf("Failed to evict beer %s from cache: %+v", beer.ID, err)
	}
}
