package entities

import "strings"

// PartQuery describes a part search submitted to offer sources
type PartQuery struct {
	PartName     string `json:"part_name"`
	PartNumber   string `json:"part_number,omitempty"`
	Category     string `json:"category,omitempty"`
	VehicleMake  string `json:"vehicle_make,omitempty"`
	VehicleModel string `json:"vehicle_model,omitempty"`
	VehicleYear  int    `json:"vehicle_year,omitempty"`
}

// Validate rejects under-specified queries before any source I/O happens.
// At least one of part name, part number, or category must be present.
func (q *PartQuery) Validate() error {
	if strings.TrimSpace(q.PartName) == "" &&
		strings.TrimSpace(q.PartNumber) == "" &&
		strings.TrimSpace(q.Category) == "" {
		return &InvalidQueryError{Reason: "at least one of part name, part number, or category is required"}
	}
	return nil
}
