// Package maps implements the geospatial agent: geocoding, directions,
// distance matrices, nearby search, and static map URLs. Everything except
// the URL builder returns canned data until MAPS_API_KEY is wired to the
// real Maps backend.
package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/models"
)

const instructions = `You are a maps and geospatial expert agent. Your role is to:
1. Generate map visualizations based on location data
2. Provide directions and route information
3. Geocode addresses to coordinates
4. Reverse geocode coordinates to addresses
5. Calculate distances and travel times
6. Find nearby places and points of interest
7. Create static map URLs for embedding

Always provide accurate location information and handle ambiguous locations appropriately.
Use appropriate zoom levels and map types for different use cases.`

const mockNote = "This is a mock implementation. Configure MAPS_API_KEY for real results."

type mapsTools struct {
	apiKey string
}

// New builds the Maps agent. apiKey may be empty; static map URLs are then
// generated unsigned.
func New(model models.Model, apiKey string) (*agent.Agent, error) {
	m := &mapsTools{apiKey: apiKey}

	catalog := agent.NewCatalog()
	for _, reg := range []struct {
		spec    agent.ToolSpec
		handler agent.Handler
	}{
		{geocodeSpec, m.geocode},
		{reverseGeocodeSpec, m.reverseGeocode},
		{getDirectionsSpec, m.getDirections},
		{calculateDistanceSpec, m.calculateDistance},
		{findNearbyPlacesSpec, m.findNearbyPlaces},
		{generateStaticMapSpec, m.generateStaticMap},
	} {
		if err := catalog.Register(reg.spec, reg.handler); err != nil {
			return nil, err
		}
	}

	return agent.New(agent.Options{
		Name:         "Maps Agent",
		Description:  "Specialized agent for generating maps and providing geospatial information",
		Instructions: instructions,
		AgentType:    "MapsAgent",
		Model:        model,
		Catalog:      catalog,
	})
}

func (m *mapsTools) geocode(_ context.Context, params map[string]any) agent.Result {
	address := agent.StringParam(params, "address", "")
	if address == "" {
		return agent.Errorf("missing required parameter: address")
	}
	return agent.OK(map[string]any{
		"success": true,
		"address": address,
		"location": map[string]any{
			"latitude":  37.7749,
			"longitude": -122.4194,
		},
		"formatted_address": address + " (geocoded)",
		"note":              mockNote,
	})
}

func (m *mapsTools) reverseGeocode(_ context.Context, params map[string]any) agent.Result {
	lat, latOK := params["latitude"].(float64)
	lng, lngOK := params["longitude"].(float64)
	if !latOK || !lngOK {
		return agent.Errorf("missing required parameters: latitude, longitude")
	}
	return agent.OK(map[string]any{
		"success":           true,
		"location":          map[string]any{"latitude": lat, "longitude": lng},
		"formatted_address": fmt.Sprintf("Address at (%g, %g)", lat, lng),
		"note":              mockNote,
	})
}

func (m *mapsTools) getDirections(_ context.Context, params map[string]any) agent.Result {
	origin := agent.StringParam(params, "origin", "")
	destination := agent.StringParam(params, "destination", "")
	if origin == "" || destination == "" {
		return agent.Errorf("missing required parameters: origin, destination")
	}
	mode := agent.StringParam(params, "mode", "driving")
	return agent.OK(map[string]any{
		"success":     true,
		"origin":      origin,
		"destination": destination,
		"mode":        mode,
		"routes": []any{
			map[string]any{
				"summary":  fmt.Sprintf("Route from %s to %s", origin, destination),
				"distance": map[string]any{"text": "10.5 km", "value": 10500},
				"duration": map[string]any{"text": "15 mins", "value": 900},
				"steps": []any{
					map[string]any{"instruction": "Head north", "distance": "500 m"},
					map[string]any{"instruction": "Turn right", "distance": "2 km"},
					map[string]any{"instruction": "Continue straight", "distance": "8 km"},
				},
			},
		},
		"note": mockNote,
	})
}

func (m *mapsTools) calculateDistance(_ context.Context, params map[string]any) agent.Result {
	origins := stringList(params["origins"])
	destinations := stringList(params["destinations"])
	if len(origins) == 0 || len(destinations) == 0 {
		return agent.Errorf("missing required parameters: origins, destinations")
	}
	mode := agent.StringParam(params, "mode", "driving")

	matrix := make([]any, 0, len(origins))
	for _, origin := range origins {
		row := make([]any, 0, len(destinations))
		for _, dest := range destinations {
			row = append(row, map[string]any{
				"origin":      origin,
				"destination": dest,
				"distance":    map[string]any{"text": "5.2 km", "value": 5200},
				"duration":    map[string]any{"text": "8 mins", "value": 480},
			})
		}
		matrix = append(matrix, row)
	}

	return agent.OK(map[string]any{
		"success":      true,
		"origins":      origins,
		"destinations": destinations,
		"mode":         mode,
		"matrix":       matrix,
		"note":         mockNote,
	})
}

func (m *mapsTools) findNearbyPlaces(_ context.Context, params map[string]any) agent.Result {
	location := agent.StringParam(params, "location", "")
	if location == "" {
		return agent.Errorf("missing required parameter: location")
	}
	return agent.OK(map[string]any{
		"success":    true,
		"location":   location,
		"place_type": agent.StringParam(params, "place_type", ""),
		"radius":     agent.IntParam(params, "radius", 1000),
		"places": []any{
			map[string]any{"name": "Example Place 1", "address": "123 Main St", "rating": 4.5, "distance": 250},
			map[string]any{"name": "Example Place 2", "address": "456 Oak Ave", "rating": 4.2, "distance": 500},
		},
		"note": mockNote,
	})
}

func (m *mapsTools) generateStaticMap(_ context.Context, params map[string]any) agent.Result {
	center := agent.StringParam(params, "center", "")
	if center == "" {
		return agent.Errorf("missing required parameter: center")
	}
	zoom := agent.IntParam(params, "zoom", 13)
	size := agent.StringParam(params, "size", "600x400")
	markers := stringList(params["markers"])

	q := url.Values{}
	q.Set("center", center)
	q.Set("zoom", fmt.Sprint(zoom))
	q.Set("size", size)
	if len(markers) > 0 {
		q.Set("markers", strings.Join(markers, "|"))
	}
	if m.apiKey != "" {
		q.Set("key", m.apiKey)
	}

	return agent.OK(map[string]any{
		"success": true,
		"url":     "https://maps.googleapis.com/maps/api/staticmap?" + q.Encode(),
		"center":  center,
		"zoom":    zoom,
		"size":    size,
		"markers": markers,
	})
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
