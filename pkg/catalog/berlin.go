package catalog

// Berlin returns the built-in weekend catalog used when no CSV is configured.
func Berlin() *Catalog {
	return New(berlinEntries)
}

var berlinEntries = []Entry{
	{Category: Museum, Name: "Pergamon Panorama", Price: 1400, Location: "Museum Island (Am Kupfergraben)"},
	{Category: Museum, Name: "Altes Museum", Price: 1000, Location: "Museum Island (Am Lustgarten)"},
	{Category: Museum, Name: "Neues Museum", Price: 1400, Location: "Museum Island (Bodestraße)"},
	{Category: Museum, Name: "DDR Museum", Price: 1350, Location: "Karl-Liebknecht-Straße 1"},
	{Category: Museum, Name: "Topography of Terror", Free: true, Location: "Niederkirchnerstraße 8"},
	{Category: Museum, Name: "Jewish Museum Berlin", Free: true, Location: "Lindenstraße 9-14 (Kreuzberg)"},

	{Category: Attraction, Name: "Brandenburg Gate", Free: true, Location: "Pariser Platz"},
	{Category: Attraction, Name: "Memorial to the Murdered Jews of Europe", Free: true, Location: "Cora-Berliner-Straße 1"},
	{Category: Attraction, Name: "East Side Gallery", Free: true, Location: "Mühlenstraße (Friedrichshain)"},
	{Category: Attraction, Name: "Reichstag Dome", Free: true, Location: "Platz der Republik 1"},
	{Category: Attraction, Name: "Berlin TV Tower", Price: 2550, Location: "Alexanderplatz"},
	{Category: Attraction, Name: "Berlin Cathedral", Price: 1000, Location: "Am Lustgarten"},
	{Category: Attraction, Name: "Checkpoint Charlie", Free: true, Location: "Friedrichstraße 43-45"},

	{Category: Restaurant, Name: "Café Krone", Price: 1500, Location: "Prenzlauer Berg"},
	{Category: Restaurant, Name: "meet me halfway Berlin", Price: 1600, Location: "Mitte"},
	{Category: Restaurant, Name: "Ephraims", Price: 3200, Location: "Mitte"},
	{Category: Restaurant, Name: "Prater Beer Garden", Price: 1800, Location: "Prenzlauer Berg"},
	{Category: Restaurant, Name: "Gallery Rooftop Bar", Price: 2400, Location: "Mercedes Platz"},
	{Category: Restaurant, Name: "Markthalle Neun", Price: 1200, Location: "Kreuzberg"},

	{Category: Neighborhood, Name: "Mitte", Free: true, Location: "Historic center"},
	{Category: Neighborhood, Name: "Kreuzberg", Free: true, Location: "Alternative, street art"},
	{Category: Neighborhood, Name: "Friedrichshain", Free: true, Location: "Nightlife"},
	{Category: Neighborhood, Name: "Prenzlauer Berg", Free: true, Location: "Cafes and brunch"},
}
