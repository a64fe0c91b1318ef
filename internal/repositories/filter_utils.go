package repositories

import (
	"strings"

	"krishaBack/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// adFilterClauses turns a search filter into AND-combined conditions with bound
// parameters. Only the columns listed here can ever be filtered on.
func adFilterClauses(f models.AdFilter, d Dialect) ([]string, []any) {
	var conditions []string
	var params []any

	like := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, column+" "+d.Like()+" ?")
		params = append(params, containsPattern(value))
	}
	like("a.title", f.Title)
	like("a.city", f.City)
	like("a.ad_type", f.AdType)
	like("a.house_type", f.HouseType)
	like("a.complex", f.Complex)

	if f.Rooms != nil {
		conditions = append(conditions, "a.rooms = ?")
		params = append(params, *f.Rooms)
	}

	if f.PriceMin != nil {
		conditions = append(conditions, "a.price >= ?")
		params = append(params, *f.PriceMin)
	}
	if f.PriceMax != nil {
		conditions = append(conditions, "a.price <= ?")
		params = append(params, *f.PriceMax)
	}
	if f.FloorMin != nil {
		conditions = append(conditions, "a.floor >= ?")
		params = append(params, *f.FloorMin)
	}
	if f.FloorMax != nil {
		conditions = append(conditions, "a.floor <= ?")
		params = append(params, *f.FloorMax)
	}
	if f.YearBuiltMin != nil {
		conditions = append(conditions, "a.year_built >= ?")
		params = append(params, *f.YearBuiltMin)
	}
	if f.YearBuiltMax != nil {
		conditions = append(conditions, "a.year_built <= ?")
		params = append(params, *f.YearBuiltMax)
	}
	if f.AreaMin != nil {
		conditions = append(conditions, "a.area >= ?")
		params = append(params, *f.AreaMin)
	}
	if f.AreaMax != nil {
		conditions = append(conditions, "a.area <= ?")
		params = append(params, *f.AreaMax)
	}

	return conditions, params
}
