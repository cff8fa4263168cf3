package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest suitable for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether password matches the stored digest.
// Mismatches are a boolean, never an error: the caller decides what an
// authentication failure looks like.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
