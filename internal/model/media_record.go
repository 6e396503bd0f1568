// File: internal/model/media_record.go
package model

import "time"

// 培養階段常數，對應 media_records.phase 欄位的合法值
const (
	PhaseInitiation      = "initiation"
	PhaseMultiplication  = "multiplication"
	PhaseRooting         = "rooting"
	PhaseAcclimatization = "acclimatization"
)

// MediaRecord 單一培養基成分紀錄：某植物物種在某培養階段的一項成分及其用量
type MediaRecord struct {
	ID         int64     `db:"id" json:"id"`
	Species    string    `db:"species" json:"species"`
	Phase      string    `db:"phase" json:"phase"`
	Ingredient string    `db:"ingredient" json:"ingredient"`
	Quantity   float64   `db:"quantity" json:"quantity"`
	Unit       string    `db:"unit" json:"unit"`
	Notes      string    `db:"notes" json:"notes"`
	CreatedBy  string    `db:"created_by" json:"created_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
