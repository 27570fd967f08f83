package model

import "arena/shared/model"

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldActive  = "active"
)

type Venue struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Active  bool   `db:"active"`
	model.Metadata
}
