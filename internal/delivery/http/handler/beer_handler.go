package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-rest-brewery/internal/delivery/dto"
	"go-rest-brewery/internal/domain/entity"
	"go-rest-brewery/internal/usecase"
	"go-rest-brewery/pkg/response"
	"go-rest-brewery/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// BeerPath is the collection path of the beer resource.
const BeerPath = "/api/v1/beer"

type BeerHandler struct {
	beerUsecase usecase.BeerUsecase
	validator   *validator.CustomValidator
	maxPageSize int
}

func NewBeerHandler(beerUsecase usecase.BeerUsecase, validator *validator.CustomValidator, maxPageSize int) *BeerHandler {
	return &BeerHandler{
		beerUsecase: beerUsecase,
		validator:   validator,
		maxPageSize: maxPageSize,
	}
}

// ListBeers handles listing beers
// @Summary List beers
// @Description Get a page of beers, optionally filtered by name and style
// @Tags Beers
// @Produce json
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Page size" default(25)
// @Param beerName query string false "Case-insensitive name filter"
// @Param beerStyle query string false "Beer style" Enums(LAGER, PILSNER, STOUT, GOSE, PORTER, ALE, WHEAT, IPA, PALE_ALE, SAISON)
// @Param showInventoryOnHand query bool false "Include quantity on hand" default(false)
// @Success 200 {object} dto.BeerPagedList
// @Failure 400 {object} response.ErrorBody
// @Router /beer [get]
func (h *BeerHandler) ListBeers(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseListQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	page, err := h.beerUsecase.ListBeers(r.Context(), query)
	if err != nil {
		h.writeError(w, err, "Failed to list beers")
		return
	}

	response.OK(w, page)
}

// GetBeerByID handles getting a beer by ID
// @Summary Get beer by ID
// @Tags Beers
// @Produce json
// @Param id path string true "Beer ID"
// @Param showInventoryOnHand query bool false "Include quantity on hand" default(false)
// @Success 200 {object} dto.BeerResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /beer/{id} [get]
func (h *BeerHandler) GetBeerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBeerID(w, r)
	if !ok {
		return
	}

	showInventory, err := parseBool(r, "showInventoryOnHand")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	beer, err := h.beerUsecase.GetByID(r.Context(), id, showInventory)
	if err != nil {
		h.writeError(w, err, "Failed to get beer")
		return
	}

	response.OK(w, beer)
}

// GetBeerByUpc handles getting a beer by UPC
// @Summary Get beer by UPC
// @Tags Beers
// @Produce json
// @Param upc path string true "Beer UPC"
// @Success 200 {object} dto.BeerResponse
// @Failure 404 {object} response.ErrorBody
// @Router /beerUpc/{upc} [get]
func (h *BeerHandler) GetBeerByUpc(w http.ResponseWriter, r *http.Request) {
	upc := mux.Vars(r)["upc"]

	beer, err := h.beerUsecase.GetByUpc(r.Context(), upc)
	if err != nil {
		h.writeError(w, err, "Failed to get beer")
		return
	}

	response.OK(w, beer)
}

// SaveNewBeer handles beer creation
// @Summary Create a beer
// @Description Create a beer; the new resource is referenced by the Location header
// @Tags Beers
// @Accept json
// @Param request body dto.CreateBeerRequest true "Create Beer Request"
// @Success 201 "Created"
// @Header 201 {string} Location "URL of the new beer"
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /beer [post]
func (h *BeerHandler) SaveNewBeer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	beer, err := h.beerUsecase.SaveNewBeer(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create beer")
		return
	}

	response.Created(w, BeerPath+"/"+beer.ID.String())
}

// UpdateBeer handles beer replacement
// @Summary Update a beer
// @Description Replace name, style, UPC, price and quantity of the beer identified by the path
// @Tags Beers
// @Accept json
// @Param id path string true "Beer ID"
// @Param request body dto.UpdateBeerRequest true "Update Beer Request"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /beer/{id} [put]
func (h *BeerHandler) UpdateBeer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBeerID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateBeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.beerUsecase.UpdateBeer(r.Context(), id, &req); err != nil {
		h.writeError(w, err, "Failed to update beer")
		return
	}

	response.NoContent(w)
}

// DeleteBeer handles beer deletion
// @Summary Delete a beer
// @Description Delete a beer; deleting an unknown beer also succeeds
// @Tags Beers
// @Param id path string true "Beer ID"
// @Success 200 "OK"
// @Failure 400 {object} response.ErrorBody
// @Router /beer/{id} [delete]
func (h *BeerHandler) DeleteBeer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBeerID(w, r)
	if !ok {
		return
	}

	if err := h.beerUsecase.DeleteBeerByID(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete beer")
		return
	}

	response.Empty(w, http.StatusOK)
}

func (h *BeerHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBeerNotFound):
		response.NotFound(w, "Beer not found")
	case errors.Is(err, usecase.ErrInvalidBeerStyle):
		response.BadRequest(w, "Invalid beer style")
	case errors.Is(err, usecase.ErrBeerUpcExists):
		response.Conflict(w, "Beer with this UPC already exists")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *BeerHandler) parseListQuery(r *http.Request) (*dto.BeerListQuery, error) {
	query := dto.NewBeerListQuery()
	values := r.URL.Query()

	if raw := values.Get("pageNumber"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return nil, fmt.Errorf("pageNumber must be a non-negative integer")
		}
		query.PageNumber = page
	}

	if raw := values.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("pageSize must be a positive integer")
		}
		if h.maxPageSize > 0 && size > h.maxPageSize {
			return nil, fmt.Errorf("pageSize must be at most %d", h.maxPageSize)
		}
		query.PageSize = size
	}

	if query.PageNumber > dto.MaxPageNumber(query.PageSize) {
		return nil, fmt.Errorf("pageNumber must be at most %d", dto.MaxPageNumber(query.PageSize))
	}

	query.BeerName = values.Get("beerName")

	if style := values.Get("beerStyle"); style != "" {
		if _, err := entity.ParseBeerStyle(style); err != nil {
			return nil, fmt.Errorf("beerStyle %q is not a known beer style", style)
		}
		query.BeerStyle = style
	}

	showInventory, err := parseBool(r, "showInventoryOnHand")
	if err != nil {
		return nil, err
	}
	query.ShowInventoryOnHand = showInventory

	return query, nil
}

// parseBeerID writes a 400 and returns false when the path id is not a UUID.
func parseBeerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid beer ID")
		return uuid.Nil, false
	}
	return id, true
}

func parseBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return value, nil
}
