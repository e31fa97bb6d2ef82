// README: User profile model and traveller ranks.
package user

// Profile is one registered traveller.
// Passwords are stored in plain form: this mirrors the app's mock-auth
// design, where accounts are a convenience and not a security boundary.
type Profile struct {
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Password         string   `json:"-"`
	Avatar           string   `json:"avatar,omitempty"` // base64 image
	TripsCount       int      `json:"tripsCount"`
	CountriesVisited []string `json:"countriesVisited"`
}

// MaxAvatarSize caps uploaded avatars at 500KB of base64 text.
const MaxAvatarSize = 500000

// Rank is one step on the traveller ladder.
type Rank struct {
	Name     string `json:"name"`
	MinTrips int    `json:"minTrips"`
}

// Ranks in ascending order of trips taken.
var Ranks = []Rank{
	{Name: "Armchair Dreamer", MinTrips: 0},
	{Name: "Baby Traveller", MinTrips: 1},
	{Name: "Explorer", MinTrips: 3},
	{Name: "World Citizen", MinTrips: 6},
	{Name: "Globetrotter Legend", MinTrips: 10},
}

// RankFor returns the highest rank the trip count qualifies for.
func RankFor(tripsCount int) Rank {
	rank := Ranks[0]
	for _, r := range Ranks {
		if tripsCount >= r.MinTrips {
			rank = r
		}
	}
	return rank
}
