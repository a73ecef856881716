package founders

import "testing"

func TestAdminAndTeam(t *testing.T) {
	if got := Admin(); got.Name != "Mohamed Galal" || got.Role != RoleAdmin {
		t.Fatalf("unexpected admin %+v", got)
	}
	team := Team()
	if len(team) != len(All())-1 {
		t.Fatalf("team size %d, all %d", len(team), len(All()))
	}
	for _, f := range team {
		if f.Role == RoleAdmin {
			t.Fatalf("admin %q listed in team", f.Name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	if Admin().Name == "changed" {
		t.Fatal("All exposed the backing list")
	}
}
