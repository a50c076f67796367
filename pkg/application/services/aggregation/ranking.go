package aggregation

import (
	"sort"

	"github.com/collisionworks/partsplan/pkg/application/dto"
	"github.com/collisionworks/partsplan/pkg/domain/entities"
)

// Blended value score weights
const (
	priceWeight        = 0.4
	speedWeight        = 0.3
	qualityWeight      = 0.2
	availabilityWeight = 0.1
)

// RankOffers computes the three single-part orderings over an offer set.
// Only in-stock offers are ranked unless none are in stock.
func RankOffers(offers []entities.SupplierOffer) dto.Rankings {
	pool := rankingPool(offers)
	if len(pool) == 0 {
		return dto.Rankings{}
	}

	return dto.Rankings{
		LowestPrice:     sortByPrice(pool),
		FastestShipping: sortBySpeed(pool),
		BestValue:       sortByValue(pool),
	}
}

// rankingPool returns the in-stock offers, or every offer when nothing is in
// stock
func rankingPool(offers []entities.SupplierOffer) []entities.SupplierOffer {
	var inStock []entities.SupplierOffer
	for _, offer := range offers {
		if offer.InStock {
			inStock = append(inStock, offer)
		}
	}
	if len(inStock) > 0 {
		return inStock
	}
	return offers
}

// lessByPrice orders by lower unit price, then fewer shipping days, then
// lexicographic supplier ID
func lessByPrice(a, b *entities.SupplierOffer) bool {
	if !a.UnitPrice.Equal(b.UnitPrice) {
		return a.UnitPrice.LessThan(b.UnitPrice)
	}
	if a.ShippingDays != b.ShippingDays {
		return a.ShippingDays < b.ShippingDays
	}
	return a.SupplierID < b.SupplierID
}

func sortByPrice(pool []entities.SupplierOffer) []entities.SupplierOffer {
	ranked := make([]entities.SupplierOffer, len(pool))
	copy(ranked, pool)
	sort.Slice(ranked, func(i, j int) bool {
		return lessByPrice(&ranked[i], &ranked[j])
	})
	return ranked
}

func sortBySpeed(pool []entities.SupplierOffer) []entities.SupplierOffer {
	ranked := make([]entities.SupplierOffer, len(pool))
	copy(ranked, pool)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.ShippingDays != b.ShippingDays {
			return a.ShippingDays < b.ShippingDays
		}
		if !a.UnitPrice.Equal(b.UnitPrice) {
			return a.UnitPrice.LessThan(b.UnitPrice)
		}
		return a.SupplierID < b.SupplierID
	})
	return ranked
}

func sortByValue(pool []entities.SupplierOffer) []dto.ScoredOffer {
	scored := valueScores(pool)
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return lessByPrice(&scored[i].Offer, &scored[j].Offer)
	})
	return scored
}

// valueScores computes the blended value score for each offer, normalizing
// price and speed to [0,1] relative to the pool (lower is better)
func valueScores(pool []entities.SupplierOffer) []dto.ScoredOffer {
	minPrice, maxPrice := pool[0].UnitPrice, pool[0].UnitPrice
	minDays, maxDays := pool[0].ShippingDays, pool[0].ShippingDays
	for _, offer := range pool[1:] {
		if offer.UnitPrice.LessThan(minPrice) {
			minPrice = offer.UnitPrice
		}
		if offer.UnitPrice.GreaterThan(maxPrice) {
			maxPrice = offer.UnitPrice
		}
		if offer.ShippingDays < minDays {
			minDays = offer.ShippingDays
		}
		if offer.ShippingDays > maxDays {
			maxDays = offer.ShippingDays
		}
	}

	priceRange := maxPrice.Sub(minPrice)
	daysRange := float64(maxDays - minDays)

	scored := make([]dto.ScoredOffer, 0, len(pool))
	for _, offer := range pool {
		priceScore := 1.0
		if !priceRange.IsZero() {
			priceScore = maxPrice.Sub(offer.UnitPrice).Div(priceRange).InexactFloat64()
		}
		speedScore := 1.0
		if daysRange > 0 {
			speedScore = float64(maxDays-offer.ShippingDays) / daysRange
		}
		availabilityScore := 0.0
		if offer.InStock {
			availabilityScore = 1.0
		}

		score := priceWeight*priceScore +
			speedWeight*speedScore +
			qualityWeight*offer.Quality.Score() +
			availabilityWeight*availabilityScore

		scored = append(scored, dto.ScoredOffer{Offer: offer, Score: score})
	}
	return scored
}
