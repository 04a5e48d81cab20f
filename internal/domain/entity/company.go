package entity

// Niveles de la jerarquía de organizaciones. El comercio (merchant) cuelga del nivel agente.
const (
	LevelHeadquarters = 0
	LevelBranch       = 1
	LevelDistributor  = 2
	LevelAgent        = 3
)

// LevelName devuelve la etiqueta de pantalla de un nivel (본사, 지사, 총판, 대리점).
func LevelName(level int) string {
	switch level {
	case LevelHeadquarters:
		return "본사"
	case LevelBranch:
		return "지사"
	case LevelDistributor:
		return "총판"
	case LevelAgent:
		return "대리점"
	default:
		return ""
	}
}

// Company organización de la jerarquía (recurso REST /companies).
// Se crea y edita desde el back-office; nunca se elimina desde el cliente.
type Company struct {
	ID             int64  `json:"id"`
	Level          int    `json:"level"`
	ParentID       *int64 `json:"parentId,omitempty"`
	ParentName     string `json:"parentName,omitempty"`
	Name           string `json:"companyName"`
	BusinessNumber string `json:"businessNumber"`
	Representative string `json:"representative"`
	BusinessType   string `json:"businessType,omitempty"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
	AccountHolder  string `json:"accountHolder"`
	LoginID        string `json:"loginId,omitempty"`
	LoginStatus    string `json:"loginStatus"`    // ACTIVE, LOCKED
	ContractStatus string `json:"contractStatus"` // CONTRACTED, TERMINATED, PENDING
	CenterID       int64  `json:"centerId,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}
