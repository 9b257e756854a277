package employee

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     empl.ID,
		Name:   empl.Name,
		Email:  empl.Email,
		Age:    empl.Age,
		Salary: empl.Salary,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

// mapToEntity builds a new record; the store assigns the ID.
func mapToEntity(req EmployeeRequest) *Employee {
	empl := &Employee{}
	applyRequest(empl, req)
	return empl
}

func applyRequest(empl *Employee, req EmployeeRequest) {
	empl.Name = req.Name
	empl.Email = req.Email
	empl.Age = req.Age
	empl.Salary = req.Salary
}
