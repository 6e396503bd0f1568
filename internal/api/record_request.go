package api

// RecordRequest 建立與更新成分紀錄共用的表單
// swagger:model api.RecordRequest
type RecordRequest struct {
	Species    string  `form:"species" validate:"required" example:"Musa acuminata"`
	Phase      string  `form:"phase" validate:"required,oneof=initiation multiplication rooting acclimatization" example:"multiplication"`
	Ingredient string  `form:"ingredient" validate:"required" example:"BAP"`
	Quantity   float64 `form:"quantity" validate:"required,gt=0" example:"2.5"`
	Unit       string  `form:"unit" validate:"required" example:"mg/L"`
	Notes      string  `form:"notes" example:"añadir antes de autoclavar"`
}
