package model

type Department struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
