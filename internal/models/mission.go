package models

// Mission is one fixed challenge definition. The catalog is seeded once and
// survives round resets untouched.
type Mission struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Number        int    `json:"number"`
	TitleDe       string `json:"title_de" gorm:"column:title_de"`
	DescriptionDe string `json:"description_de" gorm:"column:description_de"`
	TitleEn       string `json:"title_en" gorm:"column:title_en"`
	DescriptionEn string `json:"description_en" gorm:"column:description_en"`
}
