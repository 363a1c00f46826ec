package converter

import (
	"go-rest-brewery/internal/delivery/dto"
	"go-rest-brewery/internal/domain/entity"
)

// BeerToResponse converts a Beer entity to BeerResponse DTO. Quantity on hand
// is only exposed when showInventory is set.
func BeerToResponse(beer *entity.Beer, showInventory bool) *dto.BeerResponse {
	if beer == nil {
		return nil
	}

	resp := &dto.BeerResponse{
		ID:        beer.ID,
		BeerName:  beer.BeerName,
		BeerStyle: string(beer.BeerStyle),
		Upc:       beer.Upc,
		Price:     beer.Price,
	}
	if showInventory {
		qty := beer.QuantityOnHand
		resp.QuantityOnHand = &qty
	}
	if !beer.CreatedAt.IsZero() {
		createdAt := beer.CreatedAt
		resp.CreatedDate = &createdAt
	}
	if !beer.UpdatedAt.IsZero() {
		updatedAt := beer.UpdatedAt
		resp.LastUpdatedDate = &updatedAt
	}
	return resp
}

// BeersToResponses converts a slice of Beer entities to slice of BeerResponse DTOs
func BeersToResponses(beers []entity.Beer, showInventory bool) []dto.BeerResponse {
	responses := make([]dto.BeerResponse, len(beers))
	for i := range beers {
		responses[i] = *BeerToResponse(&beers[i], showInventory)
	}
	return responses
}

// CreateRequestToBeer builds a new, unsaved Beer from the create payload.
// The style must already have been validated.
func CreateRequestToBeer(req *dto.CreateBeerRequest) *entity.Beer {
	beer := &entity.Beer{
		BeerName:  req.BeerName,
		BeerStyle: entity.BeerStyle(req.BeerStyle),
		Upc:       req.Upc,
	}
	if req.Price != nil {
		beer.Price = *req.Price
	}
	if req.QuantityOnHand != nil {
		beer.QuantityOnHand = *req.QuantityOnHand
	}
	return beer
}

// ApplyUpdateRequest replaces the mutable fields of beer with the payload.
// Identity and timestamps are left untouched.
func ApplyUpdateRequest(beer *entity.Beer, req *dto.UpdateBeerRequest) {
	beer.BeerName = req.BeerName
	beer.BeerStyle = entity.BeerStyle(req.BeerStyle)
	beer.Upc = req.Upc
	if req.Price != nil {
		beer.Price = *req.Price
	}
	beer.QuantityOnHand = 0
	if req.QuantityOnHand != nil {
		beer.QuantityOnHand = *req.QuantityOnHand
	}
}
