package votetrackdomain

type Company struct {
	ID            FlexibleID `json:"id"`
	Name          string     `json:"name"`
	LegalName     string     `json:"legalName"`
	CNPJ          string     `json:"cnpj"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	EmployeeCount int        `json:"employeeCount"`
	RatingButtons int        `json:"ratingButtons"`
}

type ServiceType struct {
	ID            FlexibleID `json:"id"`
	CompanyID     FlexibleID `json:"companyId"`
	Name          string     `json:"name"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	ExpectedMeals int        `json:"expectedMeals"`
}

// Analytics é o agregado calculado pelo próprio backend
type Analytics struct {
	CompanyID     FlexibleID     `json:"companyId"`
	TotalVotes    int            `json:"totalVotes"`
	VotesByRating map[string]int `json:"votesByRating"`
	AverageRating float64        `json:"averageRating"`
}
