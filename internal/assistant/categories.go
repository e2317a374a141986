package assistant

// Category is one row of the response table. Overrides are keyed by state and
// hold a format string with a single %s for the formatted location.
type Category struct {
	Name      string
	Keywords  []string
	Default   string
	Overrides map[string]string
}

// categories is checked top to bottom; the first match wins.
var categories = []Category{
	{
		Name:     "flood",
		Keywords: []string{"flood", "inundat", "waterlogg", "water level"},
		Default: "If you're experiencing flooding, move to higher ground immediately. Avoid walking or driving " +
			"through flood waters. Six inches of moving water can knock you down, and one foot of water can " +
			"sweep your vehicle away. Call 112 if you are trapped.",
		Overrides: map[string]string{
			"Kerala": "KERALA FLOOD EMERGENCY for %s: move to the upper floors or higher ground now and stay away " +
				"from rivers and dam spillways. For rescue call the Kerala State Disaster Management helpline 1078 " +
				"or the national emergency number 112. Keep your phone charged and follow KSDMA updates.",
			"Assam": "ASSAM FLOOD ALERT for %s: the Brahmaputra and its tributaries rise fast. Move people and " +
				"livestock to raised platforms or relief camps, and call the ASDMA helpline 1079 or 112 for rescue.",
			"Bihar": "BIHAR FLOOD ALERT for %s: Kosi and Gandak embankments may breach without warning. Move to " +
				"the nearest flood shelter and call the state control room at 1070 or 112.",
			"Maharashtra": "MAHARASHTRA FLOOD ALERT for %s: avoid low-lying roads and local train tracks during " +
				"heavy rain. Call the disaster control room at 1916 (Mumbai) or 112 for help.",
		},
	},
	{
		Name:     "earthquake",
		Keywords: []string{"earthquake", "quake", "tremor", "aftershock"},
		Default: "During an earthquake: Drop, Cover, and Hold On. Drop to the ground, take cover under a sturdy " +
			"table or desk, and hold on until the shaking stops. If there's no table nearby, cover your face and " +
			"head with your arms and crouch in an inside corner of the building.",
		Overrides: map[string]string{
			"Gujarat": "GUJARAT EARTHQUAKE ADVISORY for %s: Kutch lies in seismic zone V. Drop, Cover, and Hold On, " +
				"then move to open ground away from buildings once shaking stops. Call GSDMA at 1070 or 112.",
			"Uttarakhand": "UTTARAKHAND EARTHQUAKE ADVISORY for %s: after the shaking stops, watch for landslides " +
				"and rockfall on hill roads. Stay in the open and call the state EOC at 1070 or 112.",
			"Assam": "ASSAM EARTHQUAKE ADVISORY for %s: the north-east is highly seismic. Drop, Cover, and Hold On, " +
				"expect aftershocks, and call 112 if anyone is trapped.",
		},
	},
	{
		Name:     "cyclone",
		Keywords: []string{"cyclone", "storm", "hurricane", "typhoon", "gale"},
		Default: "For cyclones or severe storms, stay informed through local news and IMD bulletins. Secure your " +
			"home, keep emergency supplies ready, and follow evacuation orders if given. Stay away from windows " +
			"during the storm.",
		Overrides: map[string]string{
			"Odisha": "ODISHA CYCLONE ALERT for %s: move to the nearest multipurpose cyclone shelter as directed " +
				"by OSDMA. Do not return home until the all-clear. Call 1070 or 112 for assistance.",
			"Tamil Nadu": "TAMIL NADU CYCLONE ALERT for %s: fishermen must not venture into the sea. Stay indoors, " +
				"store drinking water, and call the state helpline 1070 or 112.",
			"West Bengal": "WEST BENGAL CYCLONE ALERT for %s: coastal and Sundarbans areas should evacuate to " +
				"cyclone shelters. Call 1070 or 112 for rescue.",
			"Andhra Pradesh": "ANDHRA PRADESH CYCLONE ALERT for %s: follow APSDMA evacuation orders and stay away " +
				"from the coast. Call 1070 or 112 for help.",
			"Gujarat": "GUJARAT CYCLONE ALERT for %s: coastal villages should move inland as instructed. Secure " +
				"loose objects and call 1070 or 112.",
		},
	},
	{
		Name:     "fire",
		Keywords: []string{"fire", "smoke", "burn", "blaze"},
		Default: "In case of fire: get low and go, get out, and stay out. Call the fire service on 101 from " +
			"outside the building. Agree a meeting place for family members and never go back inside a " +
			"burning building.",
	},
	{
		Name:     "landslide",
		Keywords: []string{"landslide", "mudslide", "rockfall", "debris flow"},
		Default: "If you are in a landslide-prone area, watch for cracks in the ground, tilting trees, and " +
			"sudden changes in stream water. Move away from the path of the slide and avoid travel on hill " +
			"roads during heavy rain.",
		Overrides: map[string]string{
			"Kerala": "KERALA LANDSLIDE ALERT for %s: evacuate hill slopes and stay in relief camps until KSDMA " +
				"declares the area safe. Call 1078 or 112 for rescue.",
			"Uttarakhand": "UTTARAKHAND LANDSLIDE ALERT for %s: avoid travel on hill roads and char dham routes. " +
				"Call the state EOC at 1070 or 112.",
			"Himachal Pradesh": "HIMACHAL PRADESH LANDSLIDE ALERT for %s: stay away from slopes and river banks " +
				"and follow district administration advisories. Call 1077 or 112.",
		},
	},
	{
		Name:     "tsunami",
		Keywords: []string{"tsunami", "tidal wave"},
		Default: "If you feel a strong coastal earthquake or see the sea recede suddenly, move inland or to high " +
			"ground immediately. Do not wait for an official warning and do not go to the beach to watch.",
		Overrides: map[string]string{
			"Tamil Nadu": "TAMIL NADU TSUNAMI WARNING for %s: move at least 2 km inland or to high ground now. " +
				"Follow INCOIS alerts and call 1070 or 112.",
			"Kerala": "KERALA TSUNAMI WARNING for %s: leave the coast and backwater banks immediately. Call 1078 " +
				"or 112 for assistance.",
		},
	},
	{
		Name:     "evacuation",
		Keywords: []string{"evacuat", "escape route", "leave my home", "where should i go"},
		Default: "Follow evacuation orders from local authorities without delay. Take your emergency kit, " +
			"documents, and medicines, switch off gas and electricity, and use the marked evacuation routes.",
	},
	{
		Name:     "medical",
		Keywords: []string{"medical", "injur", "ambulance", "bleeding", "first aid", "hospital", "hurt"},
		Default: "For medical emergencies call 108 for an ambulance. Apply firm pressure to stop bleeding, keep " +
			"the injured person warm and still, and do not move someone with a suspected spinal injury.",
	},
	{
		Name:     "shelter",
		Keywords: []string{"shelter", "relief camp", "safe place", "stay tonight"},
		Default: "Government relief camps are usually set up in schools and community halls. Contact your " +
			"district control room at 1077 or follow local announcements for the nearest open shelter.",
	},
	{
		Name:     "help",
		Keywords: []string{"help", "emergency", "sos", "rescue", "trapped"},
		Default: "If you are in immediate danger, call the national emergency number 112. For ambulance call " +
			"108, for fire 101, and for disaster helplines 1070 (state) or 1077 (district).",
	},
}

const fallbackTemplate = "I understand your concern about safety in %s. Please tell me more about the situation, " +
	"for example flood, earthquake, cyclone, fire or landslide, so I can give you the most relevant guidance. " +
	"Always follow official instructions from local authorities during emergencies."

const genericPlace = "your area"

// Categories returns a copy of the response table in priority order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
