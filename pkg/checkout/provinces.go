package checkout

// Province is a fixed shipping region with its deliverable cities. The city
// dropdown is constrained to the selected province; switching province resets
// the city to the province's first option.
type Province struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

var Provinces = []Province{
	{Name: "Punjab", Cities: []string{"Lahore", "Faisalabad", "Rawalpindi", "Multan", "Gujranwala"}},
	{Name: "Sindh", Cities: []string{"Karachi", "Hyderabad", "Sukkur", "Larkana"}},
	{Name: "Khyber Pakhtunkhwa", Cities: []string{"Peshawar", "Mardan", "Abbottabad"}},
	{Name: "Balochistan", Cities: []string{"Quetta", "Gwadar", "Turbat"}},
	{Name: "Islamabad Capital Territory", Cities: []string{"Islamabad"}},
}

// CitiesFor returns the deliverable cities for a province.
func CitiesFor(province string) ([]string, bool) {
	for _, p := range Provinces {
		if p.Name == province {
			return p.Cities, true
		}
	}
	return nil, false
}

// DefaultCity is the first valid city of a province, used when the city field
// is unset after a province change.
func DefaultCity(province string) (string, bool) {
	cities, ok := CitiesFor(province)
	if !ok || len(cities) == 0 {
		return "", false
	}
	return cities[0], true
}

func cityInProvince(province, city string) bool {
	cities, ok := CitiesFor(province)
	if !ok {
		return false
	}
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}
