package models

import "time"

// Variant labels for persisted submissions.
const (
	VariantBasic  = "basic"
	VariantSeller = "seller"
)

// BasicRegistration is the request body of the basic form variant.
type BasicRegistration struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwdclass"`
}

// SellerRegistration is the field set of the seller form variant. The
// idProof binary part travels outside this struct and is extracted
// before these fields are validated.
type SellerRegistration struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,mobile"`
	Gender          string `json:"gender" validate:"required,gender"`
	DOB             string `json:"dob" validate:"required,adult"`
	Address         string `json:"address" validate:"required,min=5"`
	Pincode         string `json:"pincode" validate:"required,pincode"`
	GovtIDType      string `json:"govtIdType" validate:"required,govtid"`
	GovtIDNumber    string `json:"govtIdNumber" validate:"required,min=5"`
	GSTNo           string `json:"gstNo" validate:"required,gstin"`
	Password        string `json:"password" validate:"required,pwdclass"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// AttachmentMeta describes a stored ID proof file. Only metadata is
// persisted; the binary lives in the upload directory.
type AttachmentMeta struct {
	OriginalName string `json:"originalName" gorm:"type:varchar(255)"`
	StoredName   string `json:"storedName" gorm:"type:varchar(255)"`
	ContentType  string `json:"contentType" gorm:"type:varchar(100)"`
	Size         int64  `json:"size"`
	Path         string `json:"path" gorm:"type:varchar(512)"`
}

// Submission is one persisted, immutable registration record. It is
// created in a single insert at acceptance time and never updated or
// deleted by this service. ConfirmPassword is validated but never
// stored; Password is stored as a bcrypt hash.
type Submission struct {
	ID           string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Variant      string         `json:"variant" gorm:"type:varchar(16)"`
	Name         string         `json:"name" gorm:"type:varchar(100)"`
	Email        string         `json:"email" gorm:"type:varchar(255)"`
	Phone        string         `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Gender       string         `json:"gender,omitempty" gorm:"type:varchar(20)"`
	DOB          string         `json:"dob,omitempty" gorm:"type:varchar(10)"`
	Address      string         `json:"address,omitempty" gorm:"type:varchar(255)"`
	Pincode      string         `json:"pincode,omitempty" gorm:"type:varchar(6)"`
	GovtIDType   string         `json:"govtIdType,omitempty" gorm:"type:varchar(32)"`
	GovtIDNumber string         `json:"govtIdNumber,omitempty" gorm:"type:varchar(64)"`
	GSTNo        string         `json:"gstNo,omitempty" gorm:"type:varchar(15)"`
	Password     string         `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	IDProof      AttachmentMeta `json:"idProof,omitempty" gorm:"embedded;embeddedPrefix:id_proof_"`
	CreatedAt    time.Time      `json:"createdAt"`
}
