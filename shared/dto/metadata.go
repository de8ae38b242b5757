package dto

import (
	"marketplace/shared/constant"
	"marketplace/shared/model"
	"marketplace/shared/timezone"
)

// Metadata is the audit block embedded in every resource response. Times are
// rendered in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(source.CreatedAt, constant.DateFormat),
		CreatedBy:  source.CreatedBy,
		ModifiedBy: source.ModifiedBy,
	}

	if !source.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
	}
}
