package domain

// User is the signed-in guest. Display-only for the booking form.
type User struct {
	ID    int64
	Name  string
	Email string
	Image string
}
