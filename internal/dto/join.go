package dto

// BenefitCard is one membership benefit on the join page.
type BenefitCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactInfo carries the club's office contact details.
type ContactInfo struct {
	Email          string `json:"email"`
	OfficeLocation string `json:"officeLocation"`
	OfficeHours    string `json:"officeHours"`
}

// JoinPageResponse is the assembled join-page view model.
type JoinPageResponse struct {
	Benefits []BenefitCard `json:"benefits"`
	Contact  ContactInfo   `json:"contact"`
}

// ApplicationRequest is a membership application submission. The join
// service validates it; nothing is persisted.
type ApplicationRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"required,email"`
	StudentID  string `json:"studentId" validate:"required,student_id"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Experience string `json:"experience" validate:"omitempty,max=2000"`
	Motivation string `json:"motivation" validate:"required,max=2000"`
}

// ApplicationResponse acknowledges a submitted application.
type ApplicationResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
