// Package profile serves the account profile shown on the profile page.
package profile

// Profile is the account record. There is no account system behind it; the
// data is the reference seed.
type Profile struct {
	Name     string
	Title    string
	Division string
	Email    string
	Phone    string
	Location string
	Joined   string
	Avatar   string
}

// Default returns the seeded profile.
func Default() Profile {
	return Profile{
		Name:     "John Smith",
		Title:    "Supply Chain Manager",
		Division: "Electronics Division",
		Email:    "john.smith@electronics.com",
		Phone:    "+1 (555) 789-0123",
		Location: "Austin, TX",
		Joined:   "March 2019",
		Avatar:   "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=256&h=256",
	}
}
