package rimodel

import (
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
)

// Identity is embedded by every table. The primary key is a UUID assigned on create when
// the caller didn't supply one.
type Identity struct {
	ID string `json:"id" gorm:"primaryKey;size:36"`
}

func (i *Identity) BeforeCreate(_ *gorm.DB) error {
	if i.ID != "" {
		return nil
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		return err
	}

	i.ID = id
	return nil
}

func (i *Identity) GetID() string {
	return i.ID
}

func (i *Identity) SetID(id string) {
	i.ID = id
}

func IsUUID(s string) bool {
	_, err := uuid.ParseUUID(s)
	return err == nil
}

// Validator is implemented by models whose invariants are checked before every write.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by models with column defaults that must be applied before
// validation. Updates write every column, so the database defaults alone aren't enough.
type Defaulter interface {
	SetDefaults()
}
