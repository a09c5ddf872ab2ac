package model

import "fmt"

// Params is one generation request to the tab producer.
type Params struct {
	Root       string `json:"root"`
	Scale      string `json:"scale"`
	Pattern    string `json:"pattern"`
	Bars       int    `json:"bars"`
	Position   int    `json:"position,omitempty"`
	CagedShape string `json:"caged_shape,omitempty"`
}

func (p Params) String() string {
	s := fmt.Sprintf("%s/%s/%s", p.Root, p.Scale, p.Pattern)
	if p.CagedShape != "" {
		s += "/" + p.CagedShape
	}
	return s
}
