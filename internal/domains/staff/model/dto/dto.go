package dto

import (
	"time"

	"resort/internal/domains/staff/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin front_desk"`
}

func (r *CreateStaffRequest) ToModel(username, hashedPassword string) model.Staff {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleFrontDesk
	}

	now := timezone.Now()

	return model.Staff{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateStaffRequest struct {
	FullName string `json:"full_name,omitempty" db:"full_name" validate:"omitempty,min=2,max=100"`
	Role     string `json:"role,omitempty"      db:"role"      validate:"omitempty,oneof=admin front_desk"`
	Active   *bool  `json:"active,omitempty"    db:"active"`
}

type StaffResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(staff model.Staff) {
	r.ID = staff.ID
	r.Email = staff.Email
	r.FullName = staff.FullName
	r.Role = staff.Role
	r.Active = staff.Active
	r.LastLogin = staff.LastLogin
	r.Metadata.FromModel(staff.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
