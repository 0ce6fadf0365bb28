package seed

import "worldsporta/internal/domain"

var news = []domain.NewsPost{
	{
		ID:       "1",
		Title:    "Champions League Final: Road to Wembley 2024",
		Category: domain.Football,
		Content:  "The journey to Wembley has been spectacular. Both teams are preparing for the ultimate showdown in club football. Real Madrid looks to extend their record-breaking run, while Dortmund aims to recreate their 1997 magic. Tactics will be key, as Ancelotti and Terzic prepare their squads for a high-intensity battle in London. Fans from across the globe are descending upon the city, creating an electric atmosphere that only the Champions League can provide.",
		ImageURL: "https://images.unsplash.com/photo-1574629810360-7efbbe195018?q=80&w=800&auto=format&fit=crop",
		Date:     "2024-05-20",
		Author:   "Admin Alex",
		Comments: []domain.Comment{
			{ID: "c1", User: "FootballFan99", Text: "Can't wait for the kickoff! Madrid are favorites but don't count out the underdogs.", Date: "2024-05-21"},
		},
	},
	{
		ID:       "2",
		Title:    "The Evolution of Modern Cricket: T20 Impact",
		Category: domain.Cricket,
		Content:  "The recent tournament has seen some of the highest scores in history. Batsmen are dominating while bowlers struggle to find their rhythm on flat pitches. Innovations like the \"ramp shot\" and \"slower ball bouncer\" have become standard requirements for any top-tier professional. We explore how data analytics and sports science are changing the way players train for the shortest format of the game.",
		ImageURL: "https://images.unsplash.com/photo-1531415074968-036ba1b575da?q=80&w=800&auto=format&fit=crop",
		Date:     "2024-05-18",
		Author:   "Jane Sporta",
		Comments: []domain.Comment{},
	},
	{
		ID:       "3",
		Title:    "NBA Playoffs: The Rise of the New Guard",
		Category: domain.Basketball,
		Content:  "A season of surprises continues as lower seeds dominate the opening rounds. The league is seeing a shift in power towards younger, more versatile rosters. Stars like Anthony Edwards and Shai Gilgeous-Alexander are taking over the mantle from the legends of the past decade. Defensive schemes are becoming more complex, requiring players to be elite on both ends of the floor.",
		ImageURL: "https://images.unsplash.com/photo-1504450758481-7338eba7524a?q=80&w=800&auto=format&fit=crop",
		Date:     "2024-05-22",
		Author:   "Mark Hoops",
		Comments: []domain.Comment{},
	},
	{
		ID:       "4",
		Title:    "Tennis: Grand Slam Season Intensity",
		Category: domain.Tennis,
		Content:  "As the clay court season reaches its peak, all eyes are on the favorites for the French Open. The physical demand of five-set matches in the heat is testing the limits of even the most conditioned athletes. Recovery technology and mental coaching are now as important as the backhand itself.",
		ImageURL: "https://images.unsplash.com/photo-1622279457486-62dcc4a4bd13?q=80&w=800&auto=format&fit=crop",
		Date:     "2024-05-23",
		Author:   "Serena V.",
		Comments: []domain.Comment{},
	},
	{
		ID:       "5",
		Title:    "The Science of Sports Nutrition",
		Category: domain.All,
		Content:  "What athletes eat is becoming a precision science. From personalized hydration plans to microscopic nutrient timing, the margin for error is shrinking. We look at how top teams are employing full-time chefs and nutritionists to gain that extra 1% edge.",
		ImageURL: "https://images.unsplash.com/photo-1490645935967-10de6ba17061?q=80&w=800&auto=format&fit=crop",
		Date:     "2024-05-24",
		Author:   "Dr. Health",
		Comments: []domain.Comment{},
	},
}

var scores = []domain.MatchScore{
	{ID: "m1", Sport: domain.Football, TeamA: "Real Madrid", TeamB: "Man City", ScoreA: 2, ScoreB: 2, Status: domain.StatusLive, Time: "75'"},
	{ID: "m2", Sport: domain.Basketball, TeamA: "Lakers", TeamB: "Warriors", ScoreA: 102, ScoreB: 110, Status: domain.StatusFinished, Time: "FT"},
	{ID: "m3", Sport: domain.Tennis, TeamA: "Alcaraz", TeamB: "Sinner", ScoreA: 2, ScoreB: 1, Status: domain.StatusLive, Time: "Set 4"},
	{ID: "m4", Sport: domain.Cricket, TeamA: "India", TeamB: "Australia", ScoreA: 245, ScoreB: 180, Status: domain.StatusUpcoming, Time: "Starts in 1h"},
	{ID: "m5", Sport: domain.Football, TeamA: "Bayern", TeamB: "Arsenal", ScoreA: 1, ScoreB: 0, Status: domain.StatusFinished, Time: "FT"},
}

var products = []domain.Product{
	{
		ID:          "p1",
		Name:        "Pro Elite Football Boots",
		Price:       129.99,
		Category:    domain.Football,
		Image:       "https://images.unsplash.com/photo-1511746315387-c4a76990fdce?q=80&w=400&auto=format&fit=crop",
		Description: "Lightweight and durable professional boots with carbon fiber plating for explosive speed.",
	},
	{
		ID:          "p2",
		Name:        "Custom Grade Willow Bat",
		Price:       249.99,
		Category:    domain.Cricket,
		Image:       "https://images.unsplash.com/photo-1593341604935-0394e01967a5?q=80&w=400&auto=format&fit=crop",
		Description: "Grade A English Willow, handcrafted for power hitting and perfect balance.",
	},
	{
		ID:          "p3",
		Name:        "Official Team Jersey",
		Price:       44.99,
		Category:    domain.Basketball,
		Image:       "https://images.unsplash.com/photo-1515523110800-9415d13b84a8?q=80&w=400&auto=format&fit=crop",
		Description: "Authentic performance wear with moisture-wicking technology and reinforced stitching.",
	},
	{
		ID:          "p4",
		Name:        "Carbon Pro Tennis Racket",
		Price:       179.99,
		Category:    domain.Tennis,
		Image:       "https://images.unsplash.com/photo-1622279457486-62dcc4a4bd13?q=80&w=400&auto=format&fit=crop",
		Description: "Maximum control and spin with our latest graphite composite frame technology.",
	},
	{
		ID:          "p5",
		Name:        "Training Cones (Set of 20)",
		Price:       19.99,
		Category:    domain.All,
		Image:       "https://images.unsplash.com/photo-1552667466-07fdd0a4489c?q=80&w=400&auto=format&fit=crop",
		Description: "High-visibility markers for agility drills and field layout.",
	},
	{
		ID:          "p6",
		Name:        "All-Weather Basketball",
		Price:       29.99,
		Category:    domain.Basketball,
		Image:       "https://images.unsplash.com/photo-1519861531473-9200262188bf?q=80&w=400&auto=format&fit=crop",
		Description: "Superior grip for indoor and outdoor courts, designed for consistent flight.",
	},
	{
		ID:          "p7",
		Name:        "Cricket Wicket Set",
		Price:       59.99,
		Category:    domain.Cricket,
		Image:       "https://images.unsplash.com/photo-1589487391730-58f20eb2c308?q=80&w=400&auto=format&fit=crop",
		Description: "Regulation size heavy-duty wooden stumps with bails.",
	},
}

var users = []domain.User{
	{ID: "u1", Username: "admin", Email: "admin@worldsporta.com", Role: domain.RoleAdmin, Blocked: false},
	{ID: "u2", Username: "johndoe", Email: "john@example.com", Role: domain.RoleUser, Blocked: false},
	{ID: "u3", Username: "sports_fan_24", Email: "fan@gmail.com", Role: domain.RoleUser, Blocked: false},
	{ID: "u4", Username: "coach_mike", Email: "mike@academy.com", Role: domain.RoleUser, Blocked: true},
}
