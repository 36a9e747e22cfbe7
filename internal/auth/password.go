package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost は bcrypt のコスト値です。
const PasswordCost = 10

// HashPassword はランダムなソルト付きのハッシュを返します。同じ入力でも毎回異なる値になります。
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword はパスワードがハッシュと一致するかを返します。
// 保存済みハッシュが壊れている場合も false です。
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
