package model

// Repository identifies the GitHub repository whose issues are ranked.
type Repository struct {
	Owner string
	Name  string
}

// FullName returns the "owner/name" form used in log fields and errors.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
