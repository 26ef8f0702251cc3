// Package models contains the persistent and in-flight data types of the
// question/answer service.
package models

// Account is a registered user. PasswordHash holds the argon2id PHC
// encoding, never a plaintext password.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}
