package utils

import "golang.org/x/crypto/bcrypt"

// BcryptCost 12 sesuai requirement keamanan aplikasi.
const BcryptCost = 12

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword mengembalikan true jika password cocok dengan hash
// tersimpan; hash rusak dihitung sebagai tidak cocok.
func VerifyPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
