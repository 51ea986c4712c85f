package registry

// defaultVenues is the reference deployment's 30-team table. The
// Lakers and Clippers share Crypto.com Arena but remain separate
// entries, one per team.
var defaultVenues = []Venue{
	{Team: "Atlanta Hawks", VenueName: "State Farm Arena", Conference: "East", Lat: 33.7573, Long: -84.3963},
	{Team: "Boston Celtics", VenueName: "TD Garden", Conference: "East", Lat: 42.3662, Long: -71.0621},
	{Team: "Brooklyn Nets", VenueName: "Barclays Center", Conference: "East", Lat: 40.6826, Long: -73.9754},
	{Team: "Charlotte Hornets", VenueName: "Spectrum Center", Conference: "East", Lat: 35.2251, Long: -80.8392},
	{Team: "Chicago Bulls", VenueName: "United Center", Conference: "East", Lat: 41.8807, Long: -87.6742},
	{Team: "Cleveland Cavaliers", VenueName: "Rocket Mortgage FieldHouse", Conference: "East", Lat: 41.4965, Long: -81.6882},
	{Team: "Detroit Pistons", VenueName: "Little Caesars Arena", Conference: "East", Lat: 42.3410, Long: -83.0552},
	{Team: "Indiana Pacers", VenueName: "Gainbridge Fieldhouse", Conference: "East", Lat: 39.7640, Long: -86.1555},
	{Team: "Miami Heat", VenueName: "Kaseya Center", Conference: "East", Lat: 25.7814, Long: -80.1870},
	{Team: "Milwaukee Bucks", VenueName: "Fiserv Forum", Conference: "East", Lat: 43.0451, Long: -87.9172},
	{Team: "New York Knicks", VenueName: "Madison Square Garden", Conference: "East", Lat: 40.7505, Long: -73.9934},
	{Team: "Orlando Magic", VenueName: "Amway Center", Conference: "East", Lat: 28.5392, Long: -81.3839},
	{Team: "Philadelphia 76ers", VenueName: "Wells Fargo Center", Conference: "East", Lat: 39.9012, Long: -75.1720},
	{Team: "Toronto Raptors", VenueName: "Scotiabank Arena", Conference: "East", Lat: 43.6435, Long: -79.3791},
	{Team: "Washington Wizards", VenueName: "Capital One Arena", Conference: "East", Lat: 38.8981, Long: -77.0209},
	{Team: "Dallas Mavericks", VenueName: "American Airlines Center", Conference: "West", Lat: 32.7905, Long: -96.8103},
	{Team: "Denver Nuggets", VenueName: "Ball Arena", Conference: "West", Lat: 39.7487, Long: -105.0077},
	{Team: "Golden State Warriors", VenueName: "Chase Center", Conference: "West", Lat: 37.7680, Long: -122.3877},
	{Team: "Houston Rockets", VenueName: "Toyota Center", Conference: "West", Lat: 29.7508, Long: -95.3621},
	{Team: "LA Clippers", VenueName: "Crypto.com Arena", Conference: "West", Lat: 34.0430, Long: -118.2673},
	{Team: "Los Angeles Lakers", VenueName: "Crypto.com Arena", Conference: "West", Lat: 34.0430, Long: -118.2673},
	{Team: "Memphis Grizzlies", VenueName: "FedExForum", Conference: "West", Lat: 35.1382, Long: -90.0506},
	{Team: "Minnesota Timberwolves", VenueName: "Target Center", Conference: "West", Lat: 44.9795, Long: -93.2761},
	{Team: "New Orleans Pelicans", VenueName: "Smoothie King Center", Conference: "West", Lat: 29.9490, Long: -90.0821},
	{Team: "Oklahoma City Thunder", VenueName: "Paycom Center", Conference: "West", Lat: 35.4634, Long: -97.5151},
	{Team: "Phoenix Suns", VenueName: "Footprint Center", Conference: "West", Lat: 33.4457, Long: -112.0712},
	{Team: "Portland Trail Blazers", VenueName: "Moda Center", Conference: "West", Lat: 45.5316, Long: -122.6668},
	{Team: "Sacramento Kings", VenueName: "Golden 1 Center", Conference: "West", Lat: 38.5802, Long: -121.4997},
	{Team: "San Antonio Spurs", VenueName: "Frost Bank Center", Conference: "West", Lat: 29.4270, Long: -98.4375},
	{Team: "Utah Jazz", VenueName: "Delta Center", Conference: "West", Lat: 40.7683, Long: -111.9011},
}
