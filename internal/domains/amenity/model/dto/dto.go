package dto

import (
	"resort/internal/domains/amenity/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name         string             `json:"name"         validate:"required,max=100"`
	Description  string             `json:"description"  validate:"omitempty,max=500"`
	Rate         float64            `json:"rate"         validate:"required,gt=0"`
	Availability model.Availability `json:"availability" validate:"omitempty,oneof=available reserved maintenance"`
	Rating       float64            `json:"rating"       validate:"omitempty,min=0,max=5"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	now := timezone.Now()

	availability := c.Availability
	if availability == "" {
		availability = model.AvailabilityAvailable
	}

	return model.Amenity{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Description:  c.Description,
		Rate:         shared.RoundCurrency(c.Rate),
		Availability: availability,
		Rating:       c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name         string             `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description  string             `db:"description"  json:"description"  validate:"omitempty,max=500"`
	Rate         *float64           `db:"rate"         json:"rate"         validate:"omitempty,gt=0"`
	Availability model.Availability `db:"availability" json:"availability" validate:"omitempty,oneof=available reserved maintenance"`
	Rating       *float64           `db:"rating"       json:"rating"       validate:"omitempty,min=0,max=5"`
}

type AmenityResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Rate         float64            `json:"rate"`
	Availability model.Availability `json:"availability"`
	Rating       float64            `json:"rating"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Rate = model.Rate
	r.Availability = model.Availability
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}

type AmenityDetailResponse struct {
	Amenity       AmenityResponse `json:"amenity"`
	TotalRentals  int             `json:"total_rentals"`
	ActiveRentals int             `json:"active_rentals"`
	UniqueGuests  int             `json:"unique_guests"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  float64         `json:"total_revenue"`
}

func (r *AmenityDetailResponse) FromModel(amenity model.Amenity, stats model.RequestStats) {
	r.Amenity.FromModel(amenity)
	r.TotalRentals = stats.TotalRentals
	r.ActiveRentals = stats.ActiveRentals
	r.UniqueGuests = stats.UniqueGuests
	r.TotalQuantity = stats.TotalQuantity
	r.TotalRevenue = shared.RoundCurrency(stats.TotalRevenue)
}
