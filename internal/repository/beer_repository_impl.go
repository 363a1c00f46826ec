package repository

import (
	"context"
	"errors"
	"strings"

	"go-rest-brewery/internal/domain/entity"
	domainRepo "go-rest-brewery/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type beerRepository struct {
	db        *gorm.DB
	auditRepo domainRepo.AuditLogRepository
}

// NewBeerRepository returns a gorm-backed BeerRepository. Every write also
// appends an audit log entry in the same transaction.
func NewBeerRepository(db *gorm.DB, auditRepo domainRepo.AuditLogRepository) domainRepo.BeerRepository {
	return &beerRepository{db: db, auditRepo: auditRepo}
}

func (r *beerRepository) Create(ctx context.Context, beer *entity.Beer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(beer).Error; err != nil {
			return translateError(err)
		}
		return r.auditRepo.Create(tx, entity.NewBeerAuditLog(entity.AuditActionBeerCreate, beer.ID.String(), nil, beer))
	})
}

// FindAll returns one page of beers matching filter together with the total
// number of matches. The page and the count are queried concurrently.
func (r *beerRepository) FindAll(ctx context.Context, filter *entity.BeerFilter, limit, offset int) ([]entity.Beer, int64, error) {
	var (
		beers []entity.Beer
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order("beer_name ASC, id ASC").
			Limit(limit).
			Offset(offset).
			Find(&beers).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return beers, total, nil
}

func (r *beerRepository) filtered(ctx context.Context, filter *entity.BeerFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Beer{})
	if filter == nil {
		return query
	}
	if filter.BeerName != "" {
		query = query.Where("beer_name ILIKE ?", "%"+escapeLike(filter.BeerName)+"%")
	}
	if filter.BeerStyle != "" {
		query = query.Where("beer_style = ?", filter.BeerStyle)
	}
	return query
}

func (r *beerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Beer, error) {
	var beer entity.Beer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&beer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beer, nil
}

func (r *beerRepository) FindByUpc(ctx context.Context, upc string) (*entity.Beer, error) {
	var beer entity.Beer
	err := r.db.WithContext(ctx).Where("upc = ?", upc).First(&beer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beer, nil
}

func (r *beerRepository) Update(ctx context.Context, beer *entity.Beer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old entity.Beer
		if err := tx.Where("id = ?", beer.ID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRepo.ErrRecordNotFound
			}
			return err
		}

		beer.CreatedAt = old.CreatedAt
		if err := tx.Save(beer).Error; err != nil {
			return translateError(err)
		}
		return r.auditRepo.Create(tx, entity.NewBeerAuditLog(entity.AuditActionBeerUpdate, beer.ID.String(), &old, beer))
	})
}

// Delete removes the beer and reports how many rows were deleted. Deleting a
// missing beer is not an error.
func (r *beerRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old entity.Beer
		if err := tx.Where("id = ?", id).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		result := tx.Where("id = ?", id).Delete(&entity.Beer{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		return r.auditRepo.Create(tx, entity.NewBeerAuditLog(entity.AuditActionBeerDelete, id.String(), &old, nil))
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *beerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Beer{}).Count(&total).Error
	return total, err
}

// translateError maps driver errors onto repository errors
func translateError(err error) error {
	if isDuplicateKeyError(err, "upc") {
		return domainRepo.ErrDuplicateUpc
	}
	return err
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input safe to embed in a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
