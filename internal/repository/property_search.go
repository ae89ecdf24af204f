package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/shopspring/decimal"
)

// averageRating is the aggregate shared by the select list and the HAVING filter.
const averageRating = "avg(property_reviews.rating)"

// predicate is one optional search condition. format holds a single %s that
// receives the positional placeholder of value.
type predicate struct {
	format  string
	value   any
	present bool
}

// buildPropertySearch assembles the property listing statement and its
// positional arguments from a sparse filter.
//
// Row filters (city, owner, price range) form one WHERE/AND chain before
// GROUP BY; the rating filter is a HAVING condition after it. Arguments are
// appended in the order their predicates are written, and each placeholder
// is the argument count right after its value was appended.
func buildPropertySearch(filter model.PropertyFilter, limit int) (string, []any) {
	rowFilters := []predicate{
		{
			format:  "properties.city ILIKE %s",
			value:   "%" + filter.City + "%",
			present: filter.City != "",
		},
		{
			format:  "properties.owner_id = %s",
			value:   derefInt64(filter.OwnerID),
			present: filter.OwnerID != nil,
		},
		{
			format:  "properties.cost_per_night >= %s",
			value:   centsOrZero(filter.MinimumPricePerNight),
			present: filter.MinimumPricePerNight != nil,
		},
		{
			format:  "properties.cost_per_night <= %s",
			value:   centsOrZero(filter.MaximumPricePerNight),
			present: filter.MaximumPricePerNight != nil,
		},
	}

	groupFilters := []predicate{
		{
			format:  averageRating + " >= %s",
			value:   derefFloat64(filter.MinimumRating),
			present: filter.MinimumRating != nil,
		},
	}

	var (
		b    strings.Builder
		args []any
	)

	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	b.WriteString("SELECT ")
	b.WriteString(propertyColumns("properties"))
	b.WriteString(", " + averageRating + " AS average_rating")
	b.WriteString("\nFROM properties")
	b.WriteString("\nLEFT JOIN property_reviews ON properties.id = property_reviews.property_id")

	writeClauses(&b, "WHERE", rowFilters, bind)
	b.WriteString("\nGROUP BY properties.id")
	writeClauses(&b, "HAVING", groupFilters, bind)

	b.WriteString("\nORDER BY properties.cost_per_night, properties.id")
	b.WriteString("\nLIMIT " + bind(limit))

	return b.String(), args
}

// writeClauses writes the present predicates, the first prefixed with lead
// and every following one with AND.
func writeClauses(b *strings.Builder, lead string, predicates []predicate, bind func(any) string) {
	keyword := lead
	for _, p := range predicates {
		if !p.present {
			continue
		}
		fmt.Fprintf(b, "\n%s "+p.format, keyword, bind(p.value))
		keyword = "AND"
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat64(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func centsOrZero(units *decimal.Decimal) int64 {
	if units == nil {
		return 0
	}
	return model.ToCents(*units)
}
