package dto

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Beer prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 25
)

// Request DTOs

// CreateBeerRequest is the payload of POST /beer. Server-assigned fields
// (id, createdDate, lastUpdatedDate) are accepted and ignored.
type CreateBeerRequest struct {
	ID              *uuid.UUID       `json:"id,omitempty" swaggerignore:"true"`
	BeerName        string           `json:"beerName" validate:"required,max=100"`
	BeerStyle       string           `json:"beerStyle" validate:"required,beerstyle"`
	Upc             string           `json:"upc" validate:"required,number,min=12,max=13"`
	Price           *decimal.Decimal `json:"price" validate:"required,gte=0" swaggertype:"number"`
	QuantityOnHand  *int             `json:"quantityOnHand" validate:"omitempty,gte=0"`
	CreatedDate     *time.Time       `json:"createdDate,omitempty" swaggerignore:"true"`
	LastUpdatedDate *time.Time       `json:"lastUpdatedDate,omitempty" swaggerignore:"true"`
}

// UpdateBeerRequest is the payload of PUT /beer/{id}; the target is always the path id.
type UpdateBeerRequest struct {
	ID              *uuid.UUID       `json:"id,omitempty" swaggerignore:"true"`
	BeerName        string           `json:"beerName" validate:"required,max=100"`
	BeerStyle       string           `json:"beerStyle" validate:"required,beerstyle"`
	Upc             string           `json:"upc" validate:"required,number,min=12,max=13"`
	Price           *decimal.Decimal `json:"price" validate:"required,gte=0" swaggertype:"number"`
	QuantityOnHand  *int             `json:"quantityOnHand" validate:"omitempty,gte=0"`
	CreatedDate     *time.Time       `json:"createdDate,omitempty" swaggerignore:"true"`
	LastUpdatedDate *time.Time       `json:"lastUpdatedDate,omitempty" swaggerignore:"true"`
}

// BeerListQuery carries the paging and filter parameters of GET /beer.
type BeerListQuery struct {
	PageNumber          int
	PageSize            int
	BeerName            string
	BeerStyle           string
	ShowInventoryOnHand bool
}

// NewBeerListQuery returns a query with the default paging applied.
func NewBeerListQuery() *BeerListQuery {
	return &BeerListQuery{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

// MaxPageNumber is the largest page number whose offset still fits in an int.
func MaxPageNumber(size int) int {
	if size < 1 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Response DTOs

type BeerResponse struct {
	ID              uuid.UUID       `json:"id"`
	BeerName        string          `json:"beerName"`
	BeerStyle       string          `json:"beerStyle"`
	Upc             string          `json:"upc"`
	Price           decimal.Decimal `json:"price" swaggertype:"number"`
	QuantityOnHand  *int            `json:"quantityOnHand,omitempty"`
	CreatedDate     *time.Time      `json:"createdDate"`
	LastUpdatedDate *time.Time      `json:"lastUpdatedDate"`
}

// BeerPagedList is one page of beers plus the metadata a client needs to page.
type BeerPagedList struct {
	Content          []BeerResponse `json:"content"`
	Number           int            `json:"number"`
	Size             int            `json:"size"`
	TotalElements    int64          `json:"totalElements"`
	TotalPages       int            `json:"totalPages"`
	NumberOfElements int            `json:"numberOfElements"`
	First            bool           `json:"first"`
	Last             bool           `json:"last"`
	Empty            bool           `json:"empty"`
}

// NewBeerPagedList assembles a page. content is truncated to size and never nil.
func NewBeerPagedList(content []BeerResponse, number, size int, total int64) *BeerPagedList {
	if content == nil {
		content = []BeerResponse{}
	}
	if size > 0 && len(content) > size {
		content = content[:size]
	}
	if total < int64(len(content)) {
		total = int64(len(content))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int(total / int64(size))
		if total%int64(size) > 0 {
			totalPages++
		}
	}

	return &BeerPagedList{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number >= totalPages-1,
		Empty:            len(content) == 0,
	}
}
