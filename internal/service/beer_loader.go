package service

import (
	"context"
	"fmt"

	"go-rest-brewery/internal/domain/entity"
	"go-rest-brewery/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Well-known UPCs of the sample catalogue.
const (
	Beer1Upc = "0631234200036"
	Beer2Upc = "0631234300019"
	Beer3Upc = "0083783375213"
)

// BeerLoader seeds the sample catalogue into an empty store.
type BeerLoader struct {
	beerRepo repository.BeerRepository
	log      *logrus.Logger
}

func NewBeerLoader(beerRepo repository.BeerRepository, log *logrus.Logger) *BeerLoader {
	return &BeerLoader{beerRepo: beerRepo, log: log}
}

// SampleBeers returns a fresh copy of the sample catalogue.
func SampleBeers() []entity.Beer {
	return []entity.Beer{
		{BeerName: "Mango Bobs", BeerStyle: entity.BeerStyleAle, Upc: Beer1Upc, Price: decimal.RequireFromString("12.95"), QuantityOnHand: 200},
		{BeerName: "Galaxy Cat", BeerStyle: entity.BeerStylePaleAle, Upc: Beer2Upc, Price: decimal.RequireFromString("12.95"), QuantityOnHand: 200},
		{BeerName: "No Hammers On The Bar", BeerStyle: entity.BeerStyleWheat, Upc: Beer3Upc, Price: decimal.RequireFromString("12.95"), QuantityOnHand: 200},
		{BeerName: "Blessed", BeerStyle: entity.BeerStyleStout, Upc: "4666337557578", Price: decimal.RequireFromString("11.95"), QuantityOnHand: 144},
		{BeerName: "Adjunct Trail", BeerStyle: entity.BeerStyleStout, Upc: "8380495518610", Price: decimal.RequireFromString("10.95"), QuantityOnHand: 144},
		{BeerName: "Very GGGreenn", BeerStyle: entity.BeerStyleIPA, Upc: "5677465691934", Price: decimal.RequireFromString("13.95"), QuantityOnHand: 96},
		{BeerName: "Double Barrel Hunahpu's", BeerStyle: entity.BeerStyleStout, Upc: "5463533082885", Price: decimal.RequireFromString("19.95"), QuantityOnHand: 48},
		{BeerName: "Very Hazy", BeerStyle: entity.BeerStyleIPA, Upc: "5339741428398", Price: decimal.RequireFromString("13.50"), QuantityOnHand: 120},
		{BeerName: "SR-71", BeerStyle: entity.BeerStyleStout, Upc: "1726923962766", Price: decimal.RequireFromString("14.25"), QuantityOnHand: 72},
		{BeerName: "Pliny the Younger", BeerStyle: entity.BeerStyleIPA, Upc: "8484957731774", Price: decimal.RequireFromString("21.95"), QuantityOnHand: 24},
		{BeerName: "Blessed Lager", BeerStyle: entity.BeerStyleLager, Upc: "6266328524787", Price: decimal.RequireFromString("8.95"), QuantityOnHand: 300},
		{BeerName: "Cactus Pils", BeerStyle: entity.BeerStylePilsner, Upc: "7490217802727", Price: decimal.RequireFromString("9.50"), QuantityOnHand: 250},
		{BeerName: "Sunny Gose", BeerStyle: entity.BeerStyleGose, Upc: "8579613295827", Price: decimal.RequireFromString("10.25"), QuantityOnHand: 90},
		{BeerName: "Pinball Porter", BeerStyle: entity.BeerStylePorter, Upc: "2318301340601", Price: decimal.RequireFromString("11.25"), QuantityOnHand: 110},
		{BeerName: "Farmhouse Saison", BeerStyle: entity.BeerStyleSaison, Upc: "9401790633828", Price: decimal.RequireFromString("12.25"), QuantityOnHand: 80},
	}
}

// Load inserts the sample catalogue unless the store already holds beers.
// It returns the number of beers inserted.
func (l *BeerLoader) Load(ctx context.Context) (int, error) {
	count, err := l.beerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count beers: %w", err)
	}
	if count > 0 {
		l.log.Infof("Beer store already holds %d beers, skipping sample data", count)
		return 0, nil
	}

	beers := SampleBeers()
	for i := range beers {
		if err := l.beerRepo.Create(ctx, &beers[i]); err != nil {
			return i, fmt.Errorf("create sample beer %q: %w", beers[i].BeerName, err)
		}
	}

	l.log.Infof("Loaded %d sample beers", len(beers))
	return len(beers), nil
}
