package domain

// Company representa uma empresa cliente com seus totens de votação
type Company struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	LegalName         string `json:"legal_name,omitempty"`
	CNPJ              string `json:"cnpj,omitempty"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	EmployeeCount     int    `json:"employee_count"`
	RatingButtonCount int    `json:"rating_button_count"`
}

// HidesRuim é verdadeiro para totens de 3 botões, que não exibem a opção "Ruim"
func (c Company) HidesRuim() bool {
	return c.RatingButtonCount == 3
}

// ServiceInfo descreve um tipo de serviço (refeição) oferecido pela empresa
type ServiceInfo struct {
	ID                string `json:"id"`
	CompanyID         string `json:"company_id"`
	Name              string `json:"name"`
	StartTime         string `json:"start_time,omitempty"`
	EndTime           string `json:"end_time,omitempty"`
	ExpectedMealCount int    `json:"expected_meal_count"`
}
