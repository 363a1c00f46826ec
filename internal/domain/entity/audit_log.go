package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents an audit trail entry for a change to a stored record
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityID  string    `gorm:"type:varchar(64);not null;index" json:"entity_id"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Beer audit actions
const (
	AuditActionBeerCreate = "beer.create"
	AuditActionBeerUpdate = "beer.update"
	AuditActionBeerDelete = "beer.delete"
)

const AuditEntityBeer = "beer"

// NewBeerAuditLog builds an audit entry for a beer change. Either snapshot may be nil.
func NewBeerAuditLog(action string, beerID string, oldValue, newValue *Beer) *AuditLog {
	metadata := JSON{
		"entity":    AuditEntityBeer,
		"entity_id": beerID,
		"old_value": nil,
		"new_value": nil,
	}
	if oldValue != nil {
		metadata["old_value"] = oldValue
	}
	if newValue != nil {
		metadata["new_value"] = newValue
	}

	return &AuditLog{
		Action:   action,
		EntityID: beerID,
		Metadata: metadata,
	}
}
