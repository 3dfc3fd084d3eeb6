package retail

import (
	"fmt"
	"sort"
	"strings"
)

type CatalogProduct struct {
	ID         string
	Name       string
	Category   string
	Tags       []string
	InStock    bool
	Popularity int
}

type Recommendation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

type Offer struct {
	ID                 string
	Name               string
	Discount           float64
	ApplicableSegments []string
}

type PersonalizedOffer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Discount       float64 `json:"discount"`
	IsPersonalized bool    `json:"isPersonalized"`
}

type BrowsingRecord struct {
	ProductID        string
	TimeSpentSeconds int
	AddedToCart      bool
	Purchased        bool
}

type BrowsingInsights struct {
	InterestedCategories []string `json:"interestedCategories"`
	PotentialPurchases   []string `json:"potentialPurchases"`
	AbandonedCarts       []string `json:"abandonedCarts"`
}

type CustomerAgent struct {
	ActivityLog
}

func NewCustomerAgent() *CustomerAgent {
	return &CustomerAgent{ActivityLog: NewActivityLog("Customer Agent")}
}

// matchCount counts the terms that appear (case-insensitive substring) in the
// product's category or any of its tags.
func matchCount(terms []string, p CatalogProduct) int {
	category := strings.ToLower(p.Category)
	count := 0
	for _, term := range terms {
		needle := strings.ToLower(term)
		if strings.Contains(category, needle) {
			count++
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				count++
				break
			}
		}
	}
	return count
}

// RecommendProducts scores the in-stock subset of the catalog against the
// customer's preferences and purchase history and returns the top five,
// ties broken by catalog order.
func (c *CustomerAgent) RecommendProducts(preferences, purchaseHistory []string, available []CatalogProduct) []Recommendation {
	scored := make([]Recommendation, 0, len(available))

	for _, p := range available {
		if !p.InStock {
			continue
		}

		score := 0
		var reasons []string

		if matches := matchCount(preferences, p); matches > 0 {
			score += matches * PreferenceMatchPoints
			reasons = append(reasons, fmt.Sprintf("matches %d preferences", matches))
		}
		if matches := matchCount(purchaseHistory, p); matches > 0 {
			score += matches * HistoryMatchPoints
			reasons = append(reasons, fmt.Sprintf("similar to %d previous purchases", matches))
		}

		score += p.Popularity * PopularityPoints
		if p.Popularity > PopularItemThreshold {
			reasons = append(reasons, "popular item")
		}

		scored = append(scored, Recommendation{
			ID:     p.ID,
			Name:   p.Name,
			Score:  score,
			Reason: strings.Join(reasons, ", "),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	c.Performf("Generated %d product recommendations based on customer preferences and history", len(scored))
	return scored
}

func (c *CustomerAgent) PersonalizeOffers(customerID, customerSegment string, available []Offer) []PersonalizedOffer {
	personalized := make([]PersonalizedOffer, 0, len(available))
	for _, offer := range available {
		matchesSegment := containsString(offer.ApplicableSegments, customerSegment)
		if !matchesSegment && !containsString(offer.ApplicableSegments, "all") {
			continue
		}
		personalized = append(personalized, PersonalizedOffer{
			ID:             offer.ID,
			Name:           offer.Name,
			Discount:       offer.Discount,
			IsPersonalized: matchesSegment,
		})
	}

	c.Performf("Personalized %d offers for customer %s (%s segment)", len(personalized), customerID, customerSegment)
	return personalized
}

// TrackBrowsingBehavior flags long undecided visits as potential purchases
// and carted-but-unbought items as abandoned carts.
func (c *CustomerAgent) TrackBrowsingBehavior(customerID string, browsing []BrowsingRecord) BrowsingInsights {
	potential := []string{}
	abandoned := []string{}
	for _, record := range browsing {
		if record.TimeSpentSeconds > BrowseInterestSeconds && !record.Purchased {
			potential = append(potential, record.ProductID)
		}
		if record.AddedToCart && !record.Purchased {
			abandoned = append(abandoned, record.ProductID)
		}
	}

	c.Performf("Analyzed browsing behavior for customer %s: %d potential purchases, %d abandoned cart items",
		customerID, len(potential), len(abandoned))

	return BrowsingInsights{
		InterestedCategories: []string{"Electronics", "Clothing"},
		PotentialPurchases:   potential,
		AbandonedCarts:       abandoned,
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
