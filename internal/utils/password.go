package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of plain.  Costs outside bcrypt's
// supported range fall back to the library default so a bad BCRYPT_COST
// env value cannot prevent the seed account from being hashed at boot.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plaintext candidate.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
