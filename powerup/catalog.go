package powerup

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/config"
)

// Offer is one weighted entry of the random power-up catalog.
type Offer struct {
	Weight float64
	Grant  Grant
}

// Catalog picks offers at random in proportion to their weights.
type Catalog struct {
	offers []Offer
	cum    []float64
}

// NewCatalog builds a catalog. Weights must be non-negative with at least one
// positive.
func NewCatalog(offers []Offer) (*Catalog, error) {
	if len(offers) == 0 {
		return nil, errors.New("catalog has no offers")
	}

	weights := make([]float64, len(offers))
	for i, o := range offers {
		if o.Weight < 0 {
			return nil, fmt.Errorf("offer %q has negative weight %v", o.Grant.Name, o.Weight)
		}
		weights[i] = o.Weight
	}
	if floats.Sum(weights) <= 0 {
		return nil, errors.New("catalog weights sum to zero")
	}

	return &Catalog{
		offers: offers,
		cum:    floats.CumSum(make([]float64, len(weights)), weights),
	}, nil
}

// CatalogFromConfig parses configured offers into a catalog.
func CatalogFromConfig(cfgOffers []config.OfferConfig) (*Catalog, error) {
	offers := make([]Offer, 0, len(cfgOffers))
	for _, oc := range cfgOffers {
		kind, ok := ParseKind(oc.Kind)
		if !ok {
			return nil, fmt.Errorf("offer %q: unknown kind %q", oc.Name, oc.Kind)
		}

		g := Grant{
			Name:       oc.Name,
			Kind:       kind,
			Multiplier: oc.Multiplier,
			Duration:   time.Duration(oc.Duration * float64(time.Second)),
		}
		if kind == KindSkin {
			skin, ok := components.ParseSkin(oc.Skin)
			if !ok || skin == components.SkinDefault {
				return nil, fmt.Errorf("offer %q: invalid skin %q", oc.Name, oc.Skin)
			}
			g.Skin = skin
		}
		if (kind == KindSpeed || kind == KindSize) && g.Multiplier <= 0 {
			return nil, fmt.Errorf("offer %q: multiplier must be positive", oc.Name)
		}

		offers = append(offers, Offer{Weight: oc.Weight, Grant: g})
	}
	return NewCatalog(offers)
}

// Pick returns a random offer. Zero-weight offers are never chosen.
func (c *Catalog) Pick(rng *rand.Rand) Offer {
	total := c.cum[len(c.cum)-1]
	r := rng.Float64() * total
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > r })
	if i == len(c.cum) {
		i = len(c.cum) - 1
	}
	for i > 0 && c.offers[i].Weight == 0 {
		i--
	}
	return c.offers[i]
}

// Offers returns the catalog entries in configured order.
func (c *Catalog) Offers() []Offer { return c.offers }
