package auth

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor for new password hashes.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The caller is expected to discard the plaintext immediately afterwards.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
}

// CheckPassword reports whether candidate matches the stored hash. bcrypt
// performs the comparison in constant time with respect to the hash.
func CheckPassword(hash []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(candidate)) == nil
}
