// Package founders holds the credits shown on the founders screen.
package founders

// Role marks the project admin.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = ""
)

// Founder is one credited person.
type Founder struct {
	Name string
	Role Role
}

var list = []Founder{
	{Name: "Mohamed Galal", Role: RoleAdmin},
	{Name: "Essam Samy Hassanein"},
	{Name: "Basma Hassan Hamdy"},
	{Name: "Ghofran Mahmoud Ibrahim"},
	{Name: "Anhar Abdel Maqsoud Ahmed"},
	{Name: "Hala Abdel Wahab Saleh"},
	{Name: "Asmaa Tarek Mohamed"},
	{Name: "Sara Salem Hussein"},
	{Name: "Merhan Khamis Gomaa"},
	{Name: "Yasser Mohamed Khalifa"},
	{Name: "Radwa Abdel Ghani Ahmed"},
	{Name: "Zeinab Mohamed Naguib"},
	{Name: "Shaimaa Saad El Husseiny"},
	{Name: "Sherin Saber Azmal"},
	{Name: "Nour El Hoda Hussein Seddik"},
}

// All returns every founder in credit order.
func All() []Founder { return append([]Founder(nil), list...) }

// Admin returns the admin entry.
func Admin() Founder {
	for _, f := range list {
		if f.Role == RoleAdmin {
			return f
		}
	}
	return Founder{}
}

// Team returns everyone except the admin.
func Team() []Founder {
	out := make([]Founder, 0, len(list))
	for _, f := range list {
		if f.Role != RoleAdmin {
			out = append(out, f)
		}
	}
	return out
}
