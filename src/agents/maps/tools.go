package maps

import "github.com/citymesh/a2a-agents/src/agent"

var geocodeSpec = agent.ToolSpec{
	Name:        "geocode",
	Description: "Convert an address to geographic coordinates",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"address": map[string]any{
				"type":        "string",
				"description": "The address to geocode",
			},
		},
		"required": []string{"address"},
	},
}

var reverseGeocodeSpec = agent.ToolSpec{
	Name:        "reverse_geocode",
	Description: "Convert coordinates to an address",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"latitude": map[string]any{
				"type":        "number",
				"description": "Latitude coordinate",
			},
			"longitude": map[string]any{
				"type":        "number",
				"description": "Longitude coordinate",
			},
		},
		"required": []string{"latitude", "longitude"},
	},
}

var getDirectionsSpec = agent.ToolSpec{
	Name:        "get_directions",
	Description: "Get directions between two locations",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"origin": map[string]any{
				"type":        "string",
				"description": "Starting location (address or coordinates)",
			},
			"destination": map[string]any{
				"type":        "string",
				"description": "Ending location (address or coordinates)",
			},
			"mode": map[string]any{
				"type":        "string",
				"enum":        []string{"driving", "walking", "bicycling", "transit"},
				"description": "Travel mode",
				"default":     "driving",
			},
		},
		"required": []string{"origin", "destination"},
	},
}

var calculateDistanceSpec = agent.ToolSpec{
	Name:        "calculate_distance",
	Description: "Calculate distance and duration between locations",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"origins": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of origin locations",
			},
			"destinations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of destination locations",
			},
			"mode": map[string]any{
				"type":        "string",
				"enum":        []string{"driving", "walking", "bicycling", "transit"},
				"description": "Travel mode",
				"default":     "driving",
			},
		},
		"required": []string{"origins", "destinations"},
	},
}

var findNearbyPlacesSpec = agent.ToolSpec{
	Name:        "find_nearby_places",
	Description: "Find places near a location",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location": map[string]any{
				"type":        "string",
				"description": "Center location for search",
			},
			"place_type": map[string]any{
				"type":        "string",
				"description": "Type of place to find (e.g., restaurant, hotel, gas_station)",
			},
			"radius": map[string]any{
				"type":        "number",
				"description": "Search radius in meters (default: 1000)",
				"default":     1000,
			},
		},
		"required": []string{"location"},
	},
}

var generateStaticMapSpec = agent.ToolSpec{
	Name:        "generate_static_map",
	Description: "Generate a static map URL for embedding",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"center": map[string]any{
				"type":        "string",
				"description": "Center location (address or coordinates)",
			},
			"zoom": map[string]any{
				"type":        "integer",
				"description": "Zoom level (0-21)",
				"default":     13,
			},
			"size": map[string]any{
				"type":        "string",
				"description": "Image size (e.g., '600x400')",
				"default":     "600x400",
			},
			"markers": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of marker locations",
			},
		},
		"required": []string{"center"},
	},
}
