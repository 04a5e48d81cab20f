package dto

// CompanyRequest alta o edición de una organización (POST/PUT /companies).
type CompanyRequest struct {
	Level          int    `json:"level" validate:"min=1,max=3"`
	ParentID       *int64 `json:"parentId,omitempty" validate:"omitempty,gt=0"`
	Name           string `json:"companyName" validate:"required,max=100"`
	BusinessNumber string `json:"businessNumber" validate:"required,max=20"`
	Representative string `json:"representative" validate:"required,max=50"`
	BusinessType   string `json:"businessType,omitempty" validate:"max=50"`
	Address        string `json:"address" validate:"max=200"`
	Phone          string `json:"phone" validate:"max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	BankName       string `json:"bankName" validate:"max=50"`
	AccountNumber  string `json:"accountNumber" validate:"max=50"`
	AccountHolder  string `json:"accountHolder" validate:"max=50"`
	LoginID        string `json:"loginId,omitempty" validate:"omitempty,min=4,max=50"`
	Password       string `json:"password,omitempty" validate:"omitempty,min=8,max=100"`
	LoginStatus    string `json:"loginStatus,omitempty" validate:"omitempty,oneof=ACTIVE LOCKED"`
	ContractStatus string `json:"contractStatus,omitempty" validate:"omitempty,oneof=CONTRACTED TERMINATED PENDING"`
	CenterID       int64  `json:"centerId,omitempty"`
}
