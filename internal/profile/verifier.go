package profile

import "golang.org/x/crypto/bcrypt"

// Verifier hashes and checks credentials.
type Verifier interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptVerifier implements Verifier with bcrypt at default cost.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (BcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
