package models

import "time"

// Account represents a registered citizen account. The secret is stored only
// as a bcrypt hash; accounts are never deleted.
type Account struct {
	ID             string    `bson:"id" json:"id"`
	Email          string    `bson:"email" json:"email"` // unique, stored lower-case
	CredentialHash string    `bson:"credentialHash" json:"-"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
