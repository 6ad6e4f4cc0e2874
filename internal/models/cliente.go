// models/cliente.go
package models

import "fmt"

type Customer struct {
	ID   int    `gorm:"column:customer_id;primaryKey" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`

	Deals []Deal `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"deals,omitempty"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) String() string {
	return fmt.Sprintf("%d | %s", c.ID, c.Name)
}
