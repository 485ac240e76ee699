package model

import (
	"time"

	"resort/shared/model"
)

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID            = "id"
	FieldName          = "name"
	FieldQuantity      = "quantity"
	FieldSupplier      = "supplier"
	FieldLastRestocked = "last_restocked"

	RestockTableName  = "restocks"
	RestockEntityName = "restock"

	FieldItemID      = "item_id"
	FieldRestockDate = "restock_date"
)

type Item struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Quantity      int        `db:"quantity"`
	Supplier      string     `db:"supplier"`
	LastRestocked *time.Time `db:"last_restocked"`
	model.Metadata
}

type Restock struct {
	ID          string    `db:"id"`
	ItemID      string    `db:"item_id"`
	Supplier    string    `db:"supplier"`
	Quantity    int       `db:"quantity"`
	Notes       string    `db:"notes"`
	RestockDate time.Time `db:"restock_date"`
	model.Metadata
}

type RestockStats struct {
	TotalRestocks  int        `db:"total_restocks"`
	TotalRestocked int        `db:"total_restocked"`
	LastRestock    *time.Time `db:"last_restock"`
}
