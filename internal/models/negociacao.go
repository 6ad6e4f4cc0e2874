// models/negociacao.go
package models

import (
	"fmt"
	"time"
)

// Deal registra a compra de um produto por um cliente. É a tabela de junção
// da relação N:N entre Product e Customer, com chave composta.
type Deal struct {
	ProductID  int `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"productId"`
	CustomerID int `gorm:"column:customer_id;primaryKey;autoIncrement:false" json:"customerId"`

	Amount int `gorm:"column:amount;not null;default:1" json:"amount"`
	// Valor zero fica de fora do INSERT e o banco aplica o default.
	Date time.Time `gorm:"column:deal_date;type:date;default:(CURRENT_DATE)" json:"date"`
}

func (Deal) TableName() string { return "deals" }

func (d Deal) String() string {
	return fmt.Sprintf("%d | %d | %d | %s", d.ProductID, d.CustomerID, d.Amount, d.Date.Format("2006-01-02"))
}
