package collections

import "sort"

// Company is the text-interface exercise's data model: department name to
// employee names. The zero value is not usable; call NewCompany.
type Company struct {
	departments map[string][]string
}

// NewCompany returns an empty directory.
func NewCompany() *Company {
	return &Company{departments: make(map[string][]string)}
}

// Add puts an employee into a department, creating the department on first
// use. Appending to the value of a missing key works because append treats
// the nil slice as empty.
func (c *Company) Add(name, department string) {
	c.departments[department] = append(c.departments[department], name)
}

// Department lists one department's employees sorted alphabetically. The
// stored slice is copied before sorting so callers cannot observe the
// internal order changing underneath them.
func (c *Company) Department(department string) []string {
	people := append([]string(nil), c.departments[department]...)
	sort.Strings(people)
	return people
}

// All lists every employee grouped by department, departments and people
// both alphabetical.
func (c *Company) All() map[string][]string {
	out := make(map[string][]string, len(c.departments))
	for dept := range c.departments {
		out[dept] = c.Department(dept)
	}
	return out
}
