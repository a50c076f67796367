package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// SourceFailure records one offer source that failed during aggregation
type SourceFailure struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// ScoredOffer pairs an offer with its blended value score
type ScoredOffer struct {
	Offer entities.SupplierOffer `json:"offer"`
	Score float64                `json:"score"`
}

// Rankings holds the three single-part orderings computed over an offer set
type Rankings struct {
	LowestPrice     []entities.SupplierOffer `json:"lowest_price"`
	FastestShipping []entities.SupplierOffer `json:"fastest_shipping"`
	BestValue       []ScoredOffer            `json:"best_value"`
}

// CheapestOffer returns the top lowest-price offer, or nil when no offers exist
func (r *Rankings) CheapestOffer() *entities.SupplierOffer {
	if len(r.LowestPrice) == 0 {
		return nil
	}
	return &r.LowestPrice[0]
}

// FastestOffer returns the top fastest-shipping offer, or nil when no offers exist
func (r *Rankings) FastestOffer() *entities.SupplierOffer {
	if len(r.FastestShipping) == 0 {
		return nil
	}
	return &r.FastestShipping[0]
}

// BestValueOffer returns the top blended-value offer, or nil when no offers exist
func (r *Rankings) BestValueOffer() *entities.SupplierOffer {
	if len(r.BestValue) == 0 {
		return nil
	}
	return &r.BestValue[0].Offer
}

// SearchResult contains the complete output of an aggregated offer search
type SearchResult struct {
	SearchID        uuid.UUID                `json:"search_id"`
	Query           entities.PartQuery       `json:"query"`
	Offers          []entities.SupplierOffer `json:"offers"`
	Rankings        Rankings                 `json:"rankings"`
	PartialFailures []SourceFailure          `json:"partial_failures,omitempty"`
	Elapsed         time.Duration            `json:"elapsed"`
}
