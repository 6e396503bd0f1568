// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫下列變數
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希位元組
// 每次呼叫帶入隨機鹽，同一密碼兩次哈希結果不同
// 回傳值自始至終以 []byte 流動，對應 BYTEA 欄位，不經字串轉換
func HashPassword(password string) ([]byte, error) {
	return bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
// bcrypt 內部為定時比較，不會因不符位置提早返回
func ComparePassword(hash []byte, password string) error {
	return bcryptCompareHashAndPassword(hash, []byte(password))
}
