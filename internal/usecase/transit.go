package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// transitSeparator joins the airport codes of a transit route variant.
const transitSeparator = " -> "

// maxEnumeratedStops bounds variant enumeration; the combination count
// doubles per stop.
const maxEnumeratedStops = 10

// noCustomerLabel is shown when a transit rate has no owning customer.
const noCustomerLabel = "No Customer"

// TransitOptions generates every selectable pricing variant for a transit
// rate. With no precomputed selected routes there is exactly one option
// carrying the base rate. Otherwise each selected route string yields an
// option priced as base rate plus the increments of its interior stops,
// looked up by first matching index in the stop chain.
//
// Generation fails open: unknown stop tokens and prices that do not parse
// contribute zero, and a stop chain whose price list has a different length
// is treated as absent entirely.
func TransitOptions(rate domain.TransitRate, customerName string) []domain.TransitOption {
	if customerName == "" {
		customerName = noCustomerLabel
	}

	if len(rate.SelectedRoutes) == 0 {
		return []domain.TransitOption{{
			SectorRateID: rate.ID,
			TotalPrice:   rate.Rate,
			DisplayText:  transitDisplayText(rate.Rate, rate.Label, "", customerName),
		}}
	}

	options := make([]domain.TransitOption, 0, len(rate.SelectedRoutes))
	for _, route := range rate.SelectedRoutes {
		total := rate.Rate + transitIncrement(rate, route)
		options = append(options, domain.TransitOption{
			SectorRateID: rate.ID,
			TransitRoute: route,
			TotalPrice:   total,
			DisplayText:  transitDisplayText(total, rate.Label, route, customerName),
		})
	}
	return options
}

// transitIncrement sums the incremental prices of the interior stops of one
// route variant.
func transitIncrement(rate domain.TransitRate, route string) float64 {
	if !rate.HasTransitPricing() {
		return 0
	}

	tokens := strings.Split(route, transitSeparator)
	if len(tokens) <= 2 {
		return 0
	}

	var sum float64
	for _, stop := range tokens[1 : len(tokens)-1] {
		for i, candidate := range rate.TransitRoutes {
			if candidate == stop {
				sum += coercePrice(rate.TransitPrices[i])
				break
			}
		}
	}
	return sum
}

// coercePrice converts a stored price string to a number, contributing zero
// when coercion fails.
func coercePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// transitDisplayText composes the fixed option label:
// "€<total> - <label> - <route> - <customer>", with the route part omitted
// for the base option.
func transitDisplayText(total float64, label, route, customer string) string {
	parts := []string{fmt.Sprintf("€%.2f", total), label}
	if route != "" {
		parts = append(parts, route)
	}
	parts = append(parts, customer)
	return strings.Join(parts, " - ")
}

// EnumerateRouteVariants generates every route variant of a transit rate:
// the direct pair plus one variant per subsequence of the stop chain, in
// chain order. This is what the rate editor offers when the user picks which
// combinations to store as selected routes. Chains longer than
// maxEnumeratedStops yield no variants.
func EnumerateRouteVariants(rate domain.TransitRate) []string {
	stops := rate.TransitRoutes
	if len(stops) > maxEnumeratedStops {
		return nil
	}

	variants := make([]string, 0, 1<<len(stops))
	for mask := 0; mask < 1<<len(stops); mask++ {
		tokens := []string{rate.Origin}
		for i, stop := range stops {
			if mask&(1<<i) != 0 {
				tokens = append(tokens, stop)
			}
		}
		tokens = append(tokens, rate.Destination)
		variants = append(variants, strings.Join(tokens, transitSeparator))
	}
	return variants
}
