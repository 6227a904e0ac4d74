package content

import (
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// Named coordinates of the port call.
var (
	HellesyltCruiseDock = domain.Coordinate{Lat: 62.085348, Lng: 6.873744}
	HellesyltFerryDock  = domain.Coordinate{Lat: 62.087367, Lng: 6.869952}
	HellesyltWaterfall  = domain.Coordinate{Lat: 62.086675, Lng: 6.865685}
	GeirangerFerryDock  = domain.Coordinate{Lat: 62.103568, Lng: 7.202824}
	SevenSisters        = domain.Coordinate{Lat: 62.106854, Lng: 7.093885}
	Flydal              = domain.Coordinate{Lat: 62.091142, Lng: 7.223091}
	Ornesvingen         = domain.Coordinate{Lat: 62.126299, Lng: 7.167320}
	StorfossenStart     = domain.Coordinate{Lat: 62.098041, Lng: 7.204759}
	FossevandringView   = domain.Coordinate{Lat: 62.097005, Lng: 7.209251}
)

func coordPtr(c domain.Coordinate) *domain.Coordinate {
	return &c
}

func initialItinerary() []*domain.Activity {
	return []*domain.Activity{
		{
			ID: "0", Title: "Buffet Breakfast", StartTime: domain.MustParseClock("08:00"), EndTime: domain.MustParseClock("08:30"),
			LocationName: "MSC Euribia", Coords: HellesyltCruiseDock,
			Description:     "Breakfast at the ship's buffet.",
			FullDescription: "Enjoy the buffet breakfast on board. Eat well before a full-day excursion.",
			Tips:            "The buffet gets crowded, go early.",
			KeyDetails:      "Ship buffet.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityFood,
		},
		{
			ID: "1", Title: "Arrival at Hellesylt", StartTime: domain.MustParseClock("09:00"), EndTime: domain.MustParseClock("09:00"),
			LocationName: "Cruise Quay", Coords: HellesyltCruiseDock,
			Description:     "The ship docks at Hellesylt.",
			FullDescription: "Arrival at the port of Hellesylt. The ship moors at the cruise quay.",
			Tips:            "Take in the quiet surroundings before the day starts. Locate the ferry dock, a few minutes on foot.",
			KeyDetails:      "Arrival 09:00.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityLogistics,
			InstagramURL: "https://www.instagram.com/explore/tags/hellesylt/",
		},
		{
			ID: "2", Title: "Discovering Hellesylt", StartTime: domain.MustParseClock("09:30"), EndTime: domain.MustParseClock("10:45"),
			LocationName: "Hellesylt Waterfall", Coords: HellesyltWaterfall,
			Description:     "Morning walk and the waterfall.",
			FullDescription: "The Hellesylt waterfall drops straight into the fjord a few meters from the ferry dock.",
			Tips:            "Limited mobility: the waterfall looks great from the bridge by the Grand Hotel.",
			KeyDetails:      "Impressive waterfall.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivitySightseeing,
			WebcamURL:    "https://www.youtube.com/live/S4aJlRY39fo?si=35XxdvEMmIpv4Ea4",
			InstagramURL: "https://www.instagram.com/explore/tags/hellesyltfossen/",
			TrackSetKey:  TrackSetHellesylt,
		},
		{
			ID: "3", Title: "Ferry Boarding (Outbound)", StartTime: domain.MustParseClock("10:45"), EndTime: domain.MustParseClock("11:00"),
			LocationName: "Ferry Dock", Coords: HellesyltFerryDock,
			Description:     "Get ready to board.",
			FullDescription: "Head to the ferry dock (not the cruise quay). Show your norwaysbest.com ticket and make sure you are in the right queue.",
			Tips:            "Keep digital or printed tickets at hand.",
			KeyDetails:      "Sharp departure at 11:00.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityLogistics,
			TicketURL: "https://www.norwaysbest.com/es/geiranger/actividades/crucero-por-el-fiordo-geiranger",
		},
		{
			ID: "4", Title: "Fjord Crossing to Geiranger", StartTime: domain.MustParseClock("11:00"), EndTime: domain.MustParseClock("12:05"),
			LocationName: "Geirangerfjord", EndLocationName: "Geiranger Port",
			Coords: HellesyltFerryDock, EndCoords: coordPtr(GeirangerFerryDock),
			Description:     "Cruise through the UNESCO fjord.",
			FullDescription: "Spectacular leg from Hellesylt to Geiranger past the Seven Sisters, the Suitor and the Bridal Veil waterfalls.",
			Tips:            "Use this time for waterfall photos from the boat. The Seven Sisters look best from the water.",
			KeyDetails:      "Duration 1h 05m.",
			PriceNOK:        585, PriceEUR: 50, Type: domain.ActivityTransport,
			InstagramURL: "https://www.instagram.com/explore/tags/geirangerfjord/",
			TrackSetKey:  TrackSetGeirangerFerry,
		},
		{
			ID: "5", Title: "Arrival and Quick Lunch", StartTime: domain.MustParseClock("12:05"), EndTime: domain.MustParseClock("12:45"),
			LocationName: "Geiranger Port", Coords: GeirangerFerryDock,
			Description:     "Disembark and find the bus stop.",
			FullDescription: "Go straight to the panoramic bus stop, usually right at the port next to the information centre. Grab something quick to eat.",
			Tips:            "Locate the bus stop as soon as you land so you don't have to run later.",
			KeyDetails:      "Bus stop nearby.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityFood,
			WebcamURL: "https://www.youtube.com/live/kRbPEg89tjA?si=6jGdBWjM964b-mg6",
		},
		{
			ID: "6", Title: "Panoramic Bus Tour", StartTime: domain.MustParseClock("12:45"), EndTime: domain.MustParseClock("14:15"),
			LocationName: "Geiranger", EndLocationName: "Viewpoints",
			Coords: GeirangerFerryDock, EndCoords: coordPtr(Flydal),
			Description:     "Flydalsjuvet and Ornesvingen.",
			FullDescription: "The best views of the day. The bus climbs to Flydalsjuvet, the classic postcard shot, and to Ornesvingen on the Eagle Road.",
			Tips:            "Accessibility: the tour avoids stairs, and the ten-minute viewpoint stops usually have accessible platforms.",
			KeyDetails:      "Tour of 1.5 hours.",
			PriceNOK:        550, PriceEUR: 47, Type: domain.ActivitySightseeing,
			TicketURL:    "https://www.geirangerfjord.no/panoramic-bus-geiranger-4",
			InstagramURL: "https://www.instagram.com/explore/tags/flydalsjuvet/",
			TrackSetKey:  TrackSetGeirangerBus,
		},
		{
			ID: "7", Title: "Relaxed Lunch in Geiranger", StartTime: domain.MustParseClock("14:15"), EndTime: domain.MustParseClock("16:00"),
			LocationName: "Geiranger Centre", Coords: GeirangerFerryDock,
			Description:     "A quiet meal with a view.",
			FullDescription: "Take a calm lunch in Geiranger. Several restaurants near the fjord have terraces.",
			Tips:            "Unwind after the bus. Try the local salmon.",
			KeyDetails:      "Free time.",
			PriceNOK:        350, PriceEUR: 30, Type: domain.ActivityFood,
			InstagramURL: "https://www.instagram.com/explore/tags/geiranger/",
		},
		{
			ID: "8", Title: "Village Walk or Waterfall Stairs", StartTime: domain.MustParseClock("16:00"), EndTime: domain.MustParseClock("18:00"),
			LocationName: "Fossevandring", Coords: FossevandringView,
			Description:     "Waterfall walk or shopping.",
			FullDescription: "Active option: climb the Fossevandring path beside the Storfossen waterfall. Relaxed option: a stroll around the harbour.",
			Tips:            "The waterfall walk has 327 steps but incredible views. It starts near the Hotel Union or up from the port.",
			KeyDetails:      "Two free hours.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivitySightseeing,
			InstagramURL: "https://www.instagram.com/explore/tags/fossevandring/",
			TrackSetKey:  TrackSetGeirangerVillage,
		},
		{
			ID: "9", Title: "Ferry Boarding (Return)", StartTime: domain.MustParseClock("18:00"), EndTime: domain.MustParseClock("18:30"),
			LocationName: "Geiranger Dock", Coords: GeirangerFerryDock,
			Description:     "Back toward Hellesylt.",
			FullDescription: "Head to the dock for the return ferry.",
			Tips:            "The evening light around 18:30 is ideal for the cliffs and the abandoned farms.",
			KeyDetails:      "Departure 18:30.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityLogistics,
		},
		{
			ID: "10", Title: "Return Crossing", StartTime: domain.MustParseClock("18:30"), EndTime: domain.MustParseClock("19:35"),
			LocationName: "Fjord", EndLocationName: "Hellesylt",
			Coords: GeirangerFerryDock, EndCoords: coordPtr(HellesyltFerryDock),
			Description:     "Ferry Geiranger to Hellesylt.",
			FullDescription: "Enjoy the return leg with a different perspective and the late light.",
			Tips:            "Relax on deck.",
			KeyDetails:      "Arrival 19:35.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityTransport,
			TrackSetKey: TrackSetGeirangerDeparture,
		},
		{
			ID: "11", Title: "Arrival and Free Time", StartTime: domain.MustParseClock("19:35"), EndTime: domain.MustParseClock("20:30"),
			LocationName: "Hellesylt", Coords: HellesyltCruiseDock,
			Description:     "Back in Hellesylt, free time.",
			FullDescription: "The return ferry arrives. Free time for a last walk or to head back to the ship.",
			Tips:            "Stay close to the cruise quay.",
			KeyDetails:      "Until 20:30.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivitySightseeing,
		},
		{
			ID: "12", Title: "ALL ABOARD", StartTime: domain.MustParseClock("20:30"), EndTime: domain.MustParseClock("20:30"),
			LocationName: "Cruise Quay", Coords: HellesyltCruiseDock,
			Description:     "Boarding deadline.",
			FullDescription: "All passengers must be on board. Hard deadline 20:30.",
			Tips:            "Board with time to spare.",
			KeyDetails:      "DEADLINE 20:30.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityLogistics,
			Notes: domain.NotesCritical,
		},
		{
			ID: "13", Title: "Departure", StartTime: domain.MustParseClock("21:00"), EndTime: domain.MustParseClock("21:00"),
			LocationName: "Fjord", Coords: HellesyltCruiseDock,
			Description:     "The ship sails on.",
			FullDescription: "The ship leaves for the next port. Farewell to Hellesylt.",
			Tips:            "Go up on deck for the views on the way out.",
			KeyDetails:      "Departure 21:00.",
			PriceNOK:        0, PriceEUR: 0, Type: domain.ActivityTransport,
		},
	}
}

func extraPOIs() []POI {
	return []POI{
		{Title: "Seven Sisters Waterfall", Coords: SevenSisters},
		{Title: "Ornesvingen Viewpoint", Coords: Ornesvingen},
		{Title: "Waterfall Walk Start", Coords: StorfossenStart},
	}
}
