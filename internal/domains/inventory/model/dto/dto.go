package dto

import (
	"time"

	"resort/internal/domains/inventory/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"omitempty,min=0"`
	Supplier string `json:"supplier" validate:"omitempty,max=100"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	now := timezone.Now()

	return model.Item{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Quantity: c.Quantity,
		Supplier: c.Supplier,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Quantity *int   `db:"quantity" json:"quantity" validate:"omitempty,min=0"`
	Supplier string `db:"supplier" json:"supplier" validate:"omitempty,max=100"`
}

type RestockRequest struct {
	Supplier    string `json:"supplier"     validate:"omitempty,max=100"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
	RestockDate string `json:"restock_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *RestockRequest) ToModel(itemID, supplier, user string, restockDate time.Time) model.Restock {
	now := timezone.Now()

	if r.Supplier != constant.Empty {
		supplier = r.Supplier
	}

	return model.Restock{
		ID:          uuid.NewString(),
		ItemID:      itemID,
		Supplier:    supplier,
		Quantity:    r.Quantity,
		Notes:       r.Notes,
		RestockDate: restockDate,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ItemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Supplier      string `json:"supplier"`
	LastRestocked string `json:"last_restocked"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Quantity = model.Quantity
	r.Supplier = model.Supplier
	r.LastRestocked = formatDate(model.LastRestocked)
	r.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type RestockResponse struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"`
	RestockDate string `json:"restock_date"`
	CreatedBy   string `json:"created_by"`
}

func (r *RestockResponse) FromModel(model model.Restock) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.Supplier = model.Supplier
	r.Quantity = model.Quantity
	r.Notes = model.Notes
	r.RestockDate = model.RestockDate.Format(constant.DateOnlyFormat)
	r.CreatedBy = model.CreatedBy
}

type RestockResultResponse struct {
	RestockID     string `json:"restock_id"`
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	LastRestocked string `json:"last_restocked"`
}

type ItemDetailResponse struct {
	Item           ItemResponse      `json:"item"`
	TotalRestocks  int               `json:"total_restocks"`
	TotalRestocked int               `json:"total_restocked"`
	LastRestock    string            `json:"last_restock"`
	History        []RestockResponse `json:"history"`
}

func (r *ItemDetailResponse) FromModel(item model.Item, stats model.RestockStats, history []model.Restock) {
	r.Item.FromModel(item)
	r.TotalRestocks = stats.TotalRestocks
	r.TotalRestocked = stats.TotalRestocked
	r.LastRestock = formatDate(stats.LastRestock)
	r.History = FromRestocks(history)
}

func FromRestocks(models []model.Restock) []RestockResponse {
	res := make([]RestockResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func formatDate(date *time.Time) string {
	if date == nil {
		return constant.Empty
	}

	return date.Format(constant.DateOnlyFormat)
}
