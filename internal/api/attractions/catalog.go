package attractions

import "github.com/wanderplan/wanderplan/internal/types"

// catalog is the fixed attraction set the finder filters per request.
var catalog = []types.Attraction{
	{
		Name:            "Historic Old Town Walking Tour",
		Type:            "tour",
		Description:     "Guided walk through the oldest quarter with stories of the city's founding",
		EstimatedCost:   15,
		TimeNeeded:      "3 hours",
		BestTimeToVisit: "morning",
		Rating:          4.7,
		Category:        "culture",
	},
	{
		Name:            "National Art Museum",
		Type:            "museum",
		Description:     "Collection spanning classical masters to contemporary local artists",
		EstimatedCost:   20,
		TimeNeeded:      "2-3 hours",
		BestTimeToVisit: "afternoon",
		Rating:          4.5,
		Category:        "culture",
	},
	{
		Name:            "Central Food Market",
		Type:            "market",
		Description:     "Covered market with regional produce, street food stalls and tastings",
		EstimatedCost:   10,
		TimeNeeded:      "1-2 hours",
		BestTimeToVisit: "morning",
		Rating:          4.6,
		Category:        "food",
	},
	{
		Name:            "Riverside Botanical Gardens",
		Type:            "park",
		Description:     "Landscaped gardens along the river with greenhouse pavilions",
		EstimatedCost:   8,
		TimeNeeded:      "2 hours",
		BestTimeToVisit: "afternoon",
		Rating:          4.4,
		Category:        "nature",
	},
	{
		Name:            "Sunset Viewpoint Hike",
		Type:            "outdoor",
		Description:     "Moderate trail up to the best panoramic view of the city",
		EstimatedCost:   0,
		TimeNeeded:      "3 hours",
		BestTimeToVisit: "evening",
		Rating:          4.8,
		Category:        "adventure",
	},
	{
		Name:            "Traditional Cooking Class",
		Type:            "experience",
		Description:     "Hands-on class preparing three regional dishes with a local chef",
		EstimatedCost:   55,
		TimeNeeded:      "4 hours",
		BestTimeToVisit: "afternoon",
		Rating:          4.9,
		Category:        "food",
	},
	{
		Name:            "Old Harbor Boat Cruise",
		Type:            "cruise",
		Description:     "One-hour cruise past the harbor landmarks with audio guide",
		EstimatedCost:   25,
		TimeNeeded:      "1.5 hours",
		BestTimeToVisit: "evening",
		Rating:          4.3,
		Category:        "sightseeing",
	},
	{
		Name:            "Night Bazaar and Street Performances",
		Type:            "market",
		Description:     "Evening bazaar with crafts, snacks and live street acts",
		EstimatedCost:   5,
		TimeNeeded:      "2 hours",
		BestTimeToVisit: "evening",
		Rating:          4.2,
		Category:        "nightlife",
	},
}
