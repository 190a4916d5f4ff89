package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CarFilter is the structured set of optional predicates a client can
// apply to the listing feed. Zero values mean "not set".
type CarFilter struct {
	MinPrice       *int
	MaxPrice       *int
	MinYear        *int
	MaxYear        *int
	MaxMileage     *int
	Brands         []string
	TypeVehicule   []string
	Carburant      []string
	Transmission   []string
	MinPuissance   *int
	MaxPuissance   *int
	Portes         *int
	Places         *int
	Couleur        []string
	PremiereMain   bool
	Expertisee     bool
	IsProfessional bool
	Garantie       bool
	SearchTerms    string
	City           string
}

// Clause is one predicate to be AND-ed into the listing query. SQL uses
// "?" placeholders; Build rebinds to the Postgres form.
type Clause struct {
	SQL  string
	Args []interface{}
}

// Clauses maps a filter to its predicate list. Every populated field
// yields exactly one clause; an empty filter yields none. The function
// has no database dependency so it can be tested in isolation.
func Clauses(f CarFilter) []Clause {
	var clauses []Clause
	add := func(sql string, args ...interface{}) {
		clauses = append(clauses, Clause{SQL: sql, Args: args})
	}

	if f.SearchTerms != "" {
		add("full_search @@ websearch_to_tsquery('french', ?)", f.SearchTerms)
	}
	if f.MinPrice != nil {
		add("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= ?", *f.MaxPrice)
	}
	if f.MinYear != nil {
		add("year >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		add("year <= ?", *f.MaxYear)
	}
	if f.MaxMileage != nil {
		add("mileage <= ?", *f.MaxMileage)
	}
	if len(f.Brands) > 0 {
		add("brand = ANY(?)", pq.Array(f.Brands))
	}
	if len(f.TypeVehicule) > 0 {
		add("type_vehicule = ANY(?)", pq.Array(f.TypeVehicule))
	}
	if len(f.Carburant) > 0 {
		add("carburant = ANY(?)", pq.Array(f.Carburant))
	}
	if len(f.Transmission) > 0 {
		add("transmission = ANY(?)", pq.Array(f.Transmission))
	}
	if f.MinPuissance != nil {
		add("puissance >= ?", *f.MinPuissance)
	}
	if f.MaxPuissance != nil {
		add("puissance <= ?", *f.MaxPuissance)
	}
	if f.Portes != nil {
		add("portes = ?", *f.Portes)
	}
	if f.Places != nil {
		add("places = ?", *f.Places)
	}
	if len(f.Couleur) > 0 {
		add("couleur = ANY(?)", pq.Array(f.Couleur))
	}
	if f.PremiereMain {
		add("premiere_main = TRUE")
	}
	if f.Expertisee {
		add("expertisee = TRUE")
	}
	if f.IsProfessional {
		add("is_professional = TRUE")
	}
	if f.Garantie {
		add("garantie > 0")
	}
	if f.City != "" {
		add("city = ?", f.City)
	}

	return clauses
}

// Build renders the filter as a WHERE fragment (without the "WHERE"
// keyword) with $n placeholders, plus its argument list. An empty
// filter yields ("", nil).
func Build(f CarFilter) (string, []interface{}) {
	clauses := Clauses(f)
	if len(clauses) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(clauses))
	var args []interface{}
	for _, c := range clauses {
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}

	where := sqlx.Rebind(sqlx.DOLLAR, strings.Join(parts, " AND "))
	return where, args
}

// FromValues parses the feed endpoint's query parameters into a filter.
// Unparseable numeric values are ignored rather than rejected.
func FromValues(v url.Values) CarFilter {
	f := CarFilter{
		Brands:         splitParam(v, "brands"),
		TypeVehicule:   splitParam(v, "type_vehicule"),
		Carburant:      splitParam(v, "carburant"),
		Transmission:   splitParam(v, "transmission"),
		Couleur:        splitParam(v, "couleur"),
		PremiereMain:   v.Get("premiere_main") == "true",
		Expertisee:     v.Get("expertisee") == "true",
		IsProfessional: v.Get("is_professional") == "true",
		Garantie:       v.Get("garantie") == "true",
		SearchTerms:    strings.TrimSpace(v.Get("q")),
		City:           strings.TrimSpace(v.Get("city")),
	}

	f.MinPrice = intParam(v, "min_price")
	f.MaxPrice = intParam(v, "max_price")
	f.MinYear = intParam(v, "min_year")
	f.MaxYear = intParam(v, "max_year")
	f.MaxMileage = intParam(v, "max_mileage")
	f.MinPuissance = intParam(v, "min_puissance")
	f.MaxPuissance = intParam(v, "max_puissance")
	f.Portes = intParam(v, "portes")
	f.Places = intParam(v, "places")

	return f
}

func splitParam(v url.Values, key string) []string {
	raw := v.Get(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intParam(v url.Values, key string) *int {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
