package club

// Club is a padel club as mirrored from the backend. The client never owns
// or persists clubs; they live only for the current session.
type Club struct {
	ID         string
	Name       string
	LogoURL    string
	Categories []Category
}

// Category is a competitive category offered by a club ("4ta", "5ta", ...).
// The club association is implicit: categories are always reached through
// their club.
type Category struct {
	ID   string
	Name string
}

// FindCategory returns the category with the given id, or nil.
func (c *Club) FindCategory(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}
