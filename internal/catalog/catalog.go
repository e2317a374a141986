// Package catalog holds the static content shown when no live feed data is
// available: seed alerts, safety tips, emergency contacts and assistant FAQs.
package catalog

import (
	"slices"

	"github.com/mr1hm/go-disaster-dashboard/internal/models"
)

func Alerts() []models.Alert {
	return []models.Alert{
		{
			ID:          "seed_1",
			Title:       "Flood Warning",
			Description: "Heavy rainfall causing flooding in low-lying areas of Kerala. Move to higher ground immediately.",
			Level:       models.AlertLevelHigh,
			Timestamp:   "10 min ago",
			Location:    "Kochi, Kerala",
			Coordinates: &models.Coordinates{Latitude: 9.9312, Longitude: 76.2673},
		},
		{
			ID:          "seed_2",
			Title:       "Cyclone Watch",
			Description: "Cyclone approaching the eastern coast. Stay indoors and away from windows. Follow evacuation notices.",
			Level:       models.AlertLevelModerate,
			Timestamp:   "25 min ago",
			Location:    "Odisha Coast",
			Coordinates: &models.Coordinates{Latitude: 19.8135, Longitude: 85.8312},
		},
		{
			ID:          "seed_3",
			Title:       "Landslide Alert",
			Description: "Potential landslides in hilly regions due to continuous rainfall. Avoid travel on hill roads.",
			Level:       models.AlertLevelLow,
			Timestamp:   "1 hour ago",
			Location:    "Uttarakhand",
			Coordinates: &models.Coordinates{Latitude: 30.0668, Longitude: 79.0193},
		},
		{
			ID:          "seed_4",
			Title:       "Flash Flood Warning",
			Description: "Sudden heavy rainfall causing flash floods in Wayanad district. Seek higher ground immediately.",
			Level:       models.AlertLevelHigh,
			Timestamp:   "15 min ago",
			Location:    "Wayanad, Kerala",
			Coordinates: &models.Coordinates{Latitude: 11.6854, Longitude: 76.132},
		},
		{
			ID:          "seed_5",
			Title:       "Heat Wave Advisory",
			Description: "Temperatures expected to exceed 45°C in Rajasthan. Stay hydrated and limit outdoor exposure.",
			Level:       models.AlertLevelHigh,
			Timestamp:   "3 hours ago",
			Location:    "Rajasthan",
			Coordinates: &models.Coordinates{Latitude: 27.0238, Longitude: 74.2179},
		},
	}
}

const (
	TipsGeneral  = "general"
	TipsFlood    = "flood"
	TipsFire     = "fire"
	TipsStorm    = "storm"
	TipsFirstAid = "first-aid"
)

var safetyTips = []models.SafetyTip{
	{ID: "1", Category: TipsGeneral, Title: "Prepare an Emergency Kit", Description: "Include water, non-perishable food, medications, flashlight, and first aid supplies."},
	{ID: "2", Category: TipsGeneral, Title: "Create an Evacuation Plan", Description: "Identify multiple evacuation routes from your home and establish a meeting point."},
	{ID: "3", Category: TipsGeneral, Title: "Stay Informed", Description: "Keep a battery-powered radio to receive updates if power and cellular networks fail."},
	{ID: "4", Category: TipsFlood, Title: "Move to Higher Ground", Description: "Evacuate if advised to do so. Move to higher ground if flooding is imminent."},
	{ID: "5", Category: TipsFlood, Title: "Avoid Flood Waters", Description: "Never walk or drive through flood waters. Six inches of water can knock you down."},
	{ID: "6", Category: TipsFire, Title: "Create Defensible Space", Description: "Clear flammable vegetation around your home to create a buffer zone."},
	{ID: "7", Category: TipsFire, Title: "Evacuation Readiness", Description: "Have important documents and valuables ready to go in case of evacuation."},
	{ID: "8", Category: TipsStorm, Title: "Secure Your Home", Description: "Board up windows and secure outdoor items that could become projectiles."},
	{ID: "9", Category: TipsStorm, Title: "Know Your Zone", Description: "Learn your evacuation zone and route before a cyclone approaches."},
	{ID: "10", Category: TipsFirstAid, Title: "Basic First Aid", Description: "Learn how to treat common injuries such as cuts, burns, and sprains."},
	{ID: "11", Category: TipsFirstAid, Title: "CPR Training", Description: "Consider getting certified in CPR and basic life support techniques."},
}

// SafetyTips returns the tips for category, or all of them when category is empty.
func SafetyTips(category string) []models.SafetyTip {
	out := make([]models.SafetyTip, 0, len(safetyTips))
	for _, tip := range safetyTips {
		if category == "" || tip.Category == category {
			out = append(out, tip)
		}
	}
	return out
}

func EmergencyContacts() []models.EmergencyContact {
	return []models.EmergencyContact{
		{ID: "1", Name: "National Emergency", Number: "112", Priority: models.ContactPriorityHigh},
		{ID: "2", Name: "Flood Control Room", Number: "011-23389469", Priority: models.ContactPriorityNormal},
		{ID: "3", Name: "Ambulance", Number: "108", Priority: models.ContactPriorityHigh},
		{ID: "4", Name: "Fire Service", Number: "101", Priority: models.ContactPriorityHigh},
		{ID: "5", Name: "Police", Number: "100", Priority: models.ContactPriorityHigh},
		{ID: "6", Name: "NDMA Helpline", Number: "011-26701728", Priority: models.ContactPriorityNormal},
		{ID: "7", Name: "State Disaster Control Room", Number: "1070", Priority: models.ContactPriorityNormal},
		{ID: "8", Name: "District Disaster Control Room", Number: "1077", Priority: models.ContactPriorityNormal},
	}
}

// SortContacts orders high priority contacts first and keeps the relative
// order otherwise. The input is not modified.
func SortContacts(contacts []models.EmergencyContact) []models.EmergencyContact {
	out := slices.Clone(contacts)
	slices.SortStableFunc(out, func(a, b models.EmergencyContact) int {
		ah := a.Priority == models.ContactPriorityHigh
		bh := b.Priority == models.ContactPriorityHigh
		switch {
		case ah && !bh:
			return -1
		case !ah && bh:
			return 1
		default:
			return 0
		}
	})
	return out
}

func FAQ() []models.FAQ {
	return []models.FAQ{
		{
			Question: "What should I do during a flash flood?",
			Answer:   "Move to higher ground immediately. Avoid walking or driving through flood waters. Six inches of moving water can knock you down, and one foot of water can sweep your vehicle away.",
		},
		{
			Question: "How can I prepare for an earthquake?",
			Answer:   "Secure heavy furniture to walls, create an emergency kit, know where utility shutoffs are located, and practice \"drop, cover, and hold on\" with your family.",
		},
		{
			Question: "What goes in an emergency kit?",
			Answer:   "Water (one gallon per person per day for at least three days), non-perishable food (at least a three-day supply), battery-powered radio, flashlight, first aid kit, extra batteries, whistle, dust mask, plastic sheeting and duct tape, moist towelettes, garbage bags, wrench or pliers, manual can opener, local maps, and cell phone with chargers.",
		},
	}
}

var SuggestedQuestions = []string{
	"What should I do during a flood?",
	"How do I prepare for a cyclone?",
	"What are earthquake safety tips?",
	"How do I create an emergency plan?",
	"What goes in an emergency kit?",
}
