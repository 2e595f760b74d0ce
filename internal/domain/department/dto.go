package department

import "github.com/peopledesk/payroll-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
	}
}
