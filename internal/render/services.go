package render

import (
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/view"
)

// Service is one tile of the services grid.
type Service struct {
	ID    string
	Label string
	Icon  string
	// URL opens externally instead of the service detail screen.
	URL string
}

// Services is the fixed catalogue the allServices component shows.
var Services = []Service{
	{ID: "enroll", Label: "Enroll Now", Icon: "✏️", URL: "https://example.com/enroll"},
	{ID: "tour", Label: "Schedule a Tour", Icon: "🗺️", URL: "https://example.com/schedule-tour"},
	{ID: "videos", Label: "Videos", Icon: "▶️"},
	{ID: "programs", Label: "Programs", Icon: "🛠️"},
	{ID: "campus", Label: "Campus Locations", Icon: "🏫"},
	{ID: "education", Label: "Education Model", Icon: "💻"},
	{ID: "calendar", Label: "Academic Calendar", Icon: "📅"},
	{ID: "aid", Label: "Financial Aid", Icon: "💵"},
	{ID: "scholarships", Label: "Scholarships & Grants", Icon: "💰"},
	{ID: "housing", Label: "Housing Assistance", Icon: "🏠"},
	{ID: "career", Label: "Career Services", Icon: "💼"},
	{ID: "events", Label: "UTI Events", Icon: "⭐"},
	{ID: "military", Label: "Military &", Icon: "🇺🇸"},
	{ID: "store", Label: "Online Store", Icon: "🏬"},
	{ID: "request", Label: "Request Info", Icon: "👥"},
	{ID: "chat", Label: "Have a", Icon: "💬"},
}

const servicesPerRow = 4

// Action returns what selecting the service does.
func (s Service) Action() view.Action {
	if s.URL != "" {
		return view.Action{Kind: view.ActionOpenURL, Target: s.URL}
	}
	return view.Action{Kind: view.ActionNavigate, Target: nav.ServiceDetailLink(s.ID, s.Label)}
}

// AllServices renders the service catalogue as rows of tiles.
func AllServices(p Props) view.Node {
	rows := make([]view.Node, 0, (len(Services)+servicesPerRow-1)/servicesPerRow)
	for start := 0; start < len(Services); start += servicesPerRow {
		end := min(start+servicesPerRow, len(Services))
		tiles := make([]view.Node, 0, end-start)
		for _, s := range Services[start:end] {
			tile := view.Button(s.Icon+" "+s.Label, s.Action())
			tile.Key = s.ID
			tile.Style = view.StyleTile
			tiles = append(tiles, tile)
		}
		rows = append(rows, view.Row("", view.StyleDefault, tiles...))
	}
	return view.Box(p.Key(), view.StyleDefault, rows...)
}
