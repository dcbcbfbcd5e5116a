package entity

type Cinema struct {
	Base
	Name    string `db:"name"`
	Address string `db:"address"`
	City    string `db:"city"`
}
