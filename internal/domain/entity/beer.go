package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Beer struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BeerName       string          `gorm:"type:varchar(100);not null;index" json:"beer_name"`
	BeerStyle      BeerStyle       `gorm:"type:varchar(30);not null;index" json:"beer_style"`
	Upc            string          `gorm:"type:varchar(25);uniqueIndex;not null" json:"upc"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	QuantityOnHand int             `gorm:"default:0" json:"quantity_on_hand"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Beer) TableName() string {
	return "beers"
}
