package models

type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Borough      string `json:"borough,omitempty"`
}
