package domain

type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Username   string     `json:"username"`
	Permission Permission `json:"permission"`
	Active     bool       `json:"active"`
}

// CanWrite reports whether the user may change planner content.
func (u User) CanWrite() bool {
	return u.Permission != PermissionRead
}

// ActivateAt returns a copy of users in which only users[idx] is active.
// A negative idx deactivates everyone.
func ActivateAt(users []User, idx int) []User {
	out := make([]User, len(users))
	for i, u := range users {
		u.Active = i == idx
		out[i] = u
	}
	return out
}

// IndexOfUsername returns the position of the first user with the given login, or -1.
func IndexOfUsername(users []User, username string) int {
	for i, u := range users {
		if u.Username == username {
			return i
		}
	}
	return -1
}
