package location

import "slices"

// IndianStates is the set of regions a user can pick from.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Puducherry",
}

// DisasterProneAreas lists the districts offered for selection per state.
var DisasterProneAreas = map[string][]string{
	"Kerala":      {"Wayanad", "Idukki", "Kochi", "Alappuzha", "Pathanamthitta"},
	"Odisha":      {"Puri", "Kendrapara", "Jagatsinghpur", "Balasore", "Bhadrak"},
	"Uttarakhand": {"Chamoli", "Pithoragarh", "Rudraprayag", "Uttarkashi", "Tehri"},
	"Assam":       {"Dhemaji", "Lakhimpur", "Dibrugarh", "Jorhat", "Majuli"},
	"Bihar":       {"Darbhanga", "Muzaffarpur", "Sitamarhi", "Madhubani", "Katihar"},
	"Gujarat":     {"Kutch", "Jamnagar", "Dwarka", "Porbandar", "Junagadh"},
	"Maharashtra": {"Mumbai", "Pune", "Raigad", "Sindhudurg", "Ratnagiri"},
	"Tamil Nadu":  {"Chennai", "Cuddalore", "Nagapattinam", "Kanniyakumari", "Thoothukudi"},
}

func IsKnownState(state string) bool {
	return slices.Contains(IndianStates, state)
}

// Districts returns the selectable districts for state, or nil.
func Districts(state string) []string {
	return DisasterProneAreas[state]
}
