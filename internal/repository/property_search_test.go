package repository

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/shopspring/decimal"
)

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

func ptr[T any](v T) *T { return &v }

// filterFromMask builds a filter where bit i of mask enables filter i in
// city, owner, min price, max price, min rating order.
func filterFromMask(mask int) model.PropertyFilter {
	var f model.PropertyFilter
	if mask&1 != 0 {
		f.City = "Vancouver"
	}
	if mask&2 != 0 {
		f.OwnerID = ptr(int64(7))
	}
	if mask&4 != 0 {
		f.MinimumPricePerNight = ptr(decimal.NewFromInt(100))
	}
	if mask&8 != 0 {
		f.MaximumPricePerNight = ptr(decimal.NewFromInt(200))
	}
	if mask&16 != 0 {
		f.MinimumRating = ptr(4.0)
	}
	return f
}

func TestBuildPropertySearchAllSubsets(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		f := filterFromMask(mask)
		t.Run(strconv.Itoa(mask), func(t *testing.T) {
			query, args := buildPropertySearch(f, 10)

			// Placeholders are $1..$n, in order of appearance, one per argument.
			matches := placeholderRe.FindAllStringSubmatch(query, -1)
			if len(matches) != len(args) {
				t.Fatalf("%d placeholders for %d args\n%s", len(matches), len(args), query)
			}
			for i, m := range matches {
				n, _ := strconv.Atoi(m[1])
				if n != i+1 {
					t.Fatalf("placeholder #%d is $%d, want $%d\n%s", i, n, i+1, query)
				}
			}

			groupAt := strings.Index(query, "GROUP BY")
			if groupAt < 0 {
				t.Fatalf("missing GROUP BY\n%s", query)
			}
			beforeGroup, afterGroup := query[:groupAt], query[groupAt:]

			rowFilters := 0
			for bit := 0; bit < 4; bit++ {
				if mask&(1<<bit) != 0 {
					rowFilters++
				}
			}

			wantWhere := 0
			wantAnd := 0
			if rowFilters > 0 {
				wantWhere = 1
				wantAnd = rowFilters - 1
			}
			if got := strings.Count(beforeGroup, "\nWHERE "); got != wantWhere {
				t.Fatalf("WHERE count = %d, want %d\n%s", got, wantWhere, query)
			}
			if got := strings.Count(beforeGroup, "\nAND "); got != wantAnd {
				t.Fatalf("AND count before GROUP BY = %d, want %d\n%s", got, wantAnd, query)
			}

			wantHaving := 0
			if mask&16 != 0 {
				wantHaving = 1
			}
			if got := strings.Count(afterGroup, "\nHAVING "); got != wantHaving {
				t.Fatalf("HAVING count = %d, want %d\n%s", got, wantHaving, query)
			}
			if strings.Contains(query, "HAVING") && strings.Contains(afterGroup, "\nAND ") {
				t.Fatalf("HAVING joined with AND\n%s", query)
			}
			if strings.Contains(beforeGroup, "HAVING") {
				t.Fatalf("HAVING before GROUP BY\n%s", query)
			}

			if !strings.Contains(afterGroup, "ORDER BY properties.cost_per_night") {
				t.Fatalf("missing price ordering\n%s", query)
			}
			if last := args[len(args)-1]; last != 10 {
				t.Fatalf("limit arg = %v, want 10", last)
			}
			if !strings.HasSuffix(query, "LIMIT $"+strconv.Itoa(len(args))) {
				t.Fatalf("LIMIT does not use the last placeholder\n%s", query)
			}
		})
	}
}

func TestBuildPropertySearchArguments(t *testing.T) {
	f := model.PropertyFilter{
		City:                 "ancouv",
		OwnerID:              ptr(int64(3)),
		MinimumPricePerNight: ptr(decimal.NewFromInt(100)),
		MaximumPricePerNight: ptr(decimal.NewFromInt(200)),
		MinimumRating:        ptr(4.5),
	}

	query, args := buildPropertySearch(f, 5)

	want := []any{"%ancouv%", int64(3), int64(10000), int64(20000), 4.5, 5}
	if len(args) != len(want) {
		t.Fatalf("args = %#v, want %#v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args[%d] = %#v, want %#v", i, args[i], want[i])
		}
	}

	for _, fragment := range []string{
		"\nWHERE properties.city ILIKE $1",
		"\nAND properties.owner_id = $2",
		"\nAND properties.cost_per_night >= $3",
		"\nAND properties.cost_per_night <= $4",
		"\nGROUP BY properties.id\nHAVING avg(property_reviews.rating) >= $5",
		"\nLIMIT $6",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("query missing %q\n%s", fragment, query)
		}
	}
}

func TestBuildPropertySearchFirstPredicateTakesWhere(t *testing.T) {
	query, args := buildPropertySearch(model.PropertyFilter{
		MaximumPricePerNight: ptr(decimal.NewFromInt(200)),
	}, 10)

	if !strings.Contains(query, "\nWHERE properties.cost_per_night <= $1") {
		t.Fatalf("lone price filter must open the WHERE chain\n%s", query)
	}
	if args[0] != int64(20000) {
		t.Fatalf("max price arg = %#v, want 20000 cents", args[0])
	}
}

func TestBuildPropertySearchOnlyRating(t *testing.T) {
	query, args := buildPropertySearch(model.PropertyFilter{MinimumRating: ptr(3.0)}, 10)

	if strings.Contains(query, "WHERE") {
		t.Fatalf("unexpected WHERE\n%s", query)
	}
	if !strings.Contains(query, "\nHAVING avg(property_reviews.rating) >= $1") {
		t.Fatalf("rating filter must be a HAVING clause\n%s", query)
	}
	if len(args) != 2 || args[0] != 3.0 || args[1] != 10 {
		t.Fatalf("args = %#v", args)
	}
}
