package hash

import "golang.org/x/crypto/bcrypt"

// Cost 10 keeps hashing expensive enough for credentials without making
// registration noticeably slow.
const bcryptCost = 10

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored digest.
// Any mismatch or malformed digest yields false, never an error.
func CheckPasswordHash(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
