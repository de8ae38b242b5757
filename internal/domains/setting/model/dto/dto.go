package dto

import (
	"marketplace/internal/domains/setting/model"
	"time"
)

type SetRequest struct {
	Value string `json:"value" validate:"required,numeric,max=6"`
}

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.Key = model.Key
	r.Value = model.Value
	r.UpdatedAt = model.UpdatedAt
	r.UpdatedBy = model.UpdatedBy
}

func FromModels(models []model.Setting) []SettingResponse {
	res := make([]SettingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
