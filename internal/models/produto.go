// models/produto.go
package models

import (
	"fmt"
	"strconv"
)

type Product struct {
	ID       int     `gorm:"column:product_id;primaryKey" json:"id"`
	Good     string  `gorm:"column:good;not null" json:"good"`
	Price    float64 `gorm:"column:price;type:double precision;not null" json:"price"`
	Category string  `gorm:"column:category_name;type:text;not null" json:"category"`

	Deals []Deal `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE" json:"deals,omitempty"`
}

func (Product) TableName() string { return "products" }

func (p Product) String() string {
	return fmt.Sprintf("%d | %s | %s | %s", p.ID, p.Good, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Category)
}
