package auth

import "golang.org/x/crypto/bcrypt"

// AdminUser adalah identitas yang tersimpan di sesi admin.
type AdminUser struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Verifier memeriksa kredensial login. Dipisah sebagai interface supaya
// guard tidak terikat ke satu sumber kredensial.
type Verifier interface {
	Verify(username, password string) (*AdminUser, bool)
}

// StaticVerifier memegang satu pasang kredensial tetap. Password disimpan
// sebagai hash bcrypt, bukan plaintext.
type StaticVerifier struct {
	username     string
	passwordHash []byte
	fullName     string
}

func NewStaticVerifier(username, password, fullName string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{
		username:     username,
		passwordHash: hash,
		fullName:     fullName,
	}, nil
}

func (v *StaticVerifier) Verify(username, password string) (*AdminUser, bool) {
	if username != v.username {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return nil, false
	}
	return &AdminUser{Username: v.username, FullName: v.fullName}, true
}
