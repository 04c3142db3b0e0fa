package itinerary

// Weekend is the built-in Saturday/Sunday schedule.
func Weekend() *Plan {
	return NewPlan([]Activity{
		{
			Day:      "Saturday",
			Time:     "Afternoon (Arrival)",
			Name:     "Check in & Free Walking Tour",
			Location: "Brandenburg Gate area",
			Duration: "2-3 hours",
			Cost:     "0-15",
			Tips:     "Book a free tour in advance and meet at the Brandenburg Gate.",
		},
		{
			Day:      "Saturday",
			Time:     "14:00-16:00",
			Name:     "Brandenburg Gate & Holocaust Memorial",
			Location: "Pariser Platz/Cora-Berliner-Straße",
			Duration: "2 hours",
			Cost:     "Free",
			Tips:     "Go early to avoid the crowds, then walk on to the memorial.",
		},
		{
			Day:      "Saturday",
			Time:     "16:00-18:00",
			Name:     "Museum Island (Pergamon/Altes Museum)",
			Location: "Museum Island (Bodestraße)",
			Duration: "2 hours",
			Cost:     "12-20",
			Tips:     "Pick one or two museums. The WelcomeCard gives discounts.",
		},
		{
			Day:      "Saturday",
			Time:     "18:00-20:00",
			Name:     "East Side Gallery",
			Location: "Mühlenstraße (Friedrichshain)",
			Duration: "2 hours",
			Cost:     "Free",
			Tips:     "Open around the clock. Guided tours run on weekend afternoons.",
		},
		{
			Day:      "Saturday",
			Time:     "20:00-22:00",
			Name:     "Dinner in Mitte/Kreuzberg",
			Location: "Mitte or Kreuzberg districts",
			Duration: "2 hours",
			Cost:     "25-40",
			Tips:     "Reserve a table at popular places.",
		},
		{
			Day:      "Saturday",
			Time:     "22:00+",
			Name:     "Berlin Nightlife",
			Location: "Kreuzberg/Friedrichshain clubs",
			Duration: "Variable",
			Cost:     "30-60",
			Tips:     "Clubs open late. Bring ID and cash for entry.",
		},
		{
			Day:      "Sunday",
			Time:     "09:00-11:00",
			Name:     "Sunday Brunch Culture",
			Location: "Prenzlauer Berg cafes",
			Duration: "2 hours",
			Cost:     "15-25",
			Tips:     "Reserve ahead. Café Krone is a classic.",
		},
		{
			Day:      "Sunday",
			Time:     "11:00-13:00",
			Name:     "Tiergarten Park & Victory Column",
			Location: "Großer Tiergarten",
			Duration: "2 hours",
			Cost:     "Free",
			Tips:     "Bikes can be rented nearby. The column charges a small fee.",
		},
		{
			Day:      "Sunday",
			Time:     "13:00-15:00",
			Name:     "Boat Tour on River Spree",
			Location: "Spree River (various departure points)",
			Duration: "2 hours",
			Cost:     "15-25",
			Tips:     "Several companies depart from Museum Island.",
		},
		{
			Day:      "Sunday",
			Time:     "15:00-17:00",
			Name:     "Prenzlauer Berg Exploration",
			Location: "Kollwitzplatz area",
			Duration: "2 hours",
			Cost:     "10-20",
			Tips:     "Vintage shops and cafes.",
		},
		{
			Day:      "Sunday",
			Time:     "17:00-19:00",
			Name:     "Rooftop Bar with City Views",
			Location: "Alexanderplatz or Mercedes Platz",
			Duration: "2 hours",
			Cost:     "15-30",
			Tips:     "Book for sunset and dress smart-casual.",
		},
		{
			Day:      "Sunday",
			Time:     "19:00+",
			Name:     "Final Evening Activity",
			Location: "Based on preference",
			Duration: "Variable",
			Cost:     "20-50",
			Tips:     "Many museums stay open late on Sundays.",
		},
	})
}
