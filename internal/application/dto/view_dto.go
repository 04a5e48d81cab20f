package dto

// DateTabRequest selección de pestaña de fechas (당일, 전일, 3일전, 전월, 당월).
type DateTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

// DatesRequest fechas explícitas (formato 2006-01-02; vacío = sin filtro).
type DatesRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// ConditionRequest condición de búsqueda (radio).
type ConditionRequest struct {
	Condition string `json:"condition" validate:"required"`
}

// KeywordRequest texto de búsqueda.
type KeywordRequest struct {
	Keyword string `json:"keyword" validate:"max=100"`
}

// PageRequest página cero-basada.
type PageRequest struct {
	Page int `json:"page" validate:"min=0"`
}

// SizeRequest tamaño de página.
type SizeRequest struct {
	Size int `json:"size" validate:"min=1,max=100"`
}

// ViewResponse estado de búsqueda y última página cargada de una vista.
type ViewResponse struct {
	View      string        `json:"view"`
	Search    SearchState   `json:"search"`
	Items     []interface{} `json:"items"`
	Total     int64         `json:"totalElements"`
	Pages     int           `json:"totalPages"`
	Loading   bool          `json:"loading"`
	LastError string        `json:"lastError,omitempty"`
}

// SearchState estado del formulario de búsqueda.
type SearchState struct {
	Tab        string   `json:"tab,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Condition  string   `json:"condition"`
	Conditions []string `json:"conditions"`
	Keyword    string   `json:"keyword"`
	Page       int      `json:"page"`
	Size       int      `json:"size"`
}
