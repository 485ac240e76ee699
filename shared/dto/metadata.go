package dto

import (
	"resort/shared/constant"
	"resort/shared/model"
	"resort/shared/timezone"
)

// Metadata is the audit block embedded in every entity response. Times are rendered in the
// resort timezone and a never-modified row omits modified_at.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = timezone.Format(source.CreatedAt, constant.DateFormat)
	m.CreatedBy = source.CreatedBy

	if !source.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = source.ModifiedBy
	}
}
