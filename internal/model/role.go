package model

type StaffRole struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

func (r StaffRole) SearchText() []string { return []string{r.Name, r.Description} }
func (r StaffRole) StatusTag() string    { return "" }
func (r StaffRole) CategoryTag() string  { return "" }
