package seller

import "time"

type Seller struct {
	ID        int
	Username  string
	Email     string
	Password  string // bcrypt digest, never exposed over the API
	CreatedAt time.Time
}
