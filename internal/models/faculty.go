package models

import "encoding/json"

// Faculty is a teaching staff member.
type Faculty struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

// UnmarshalJSON accepts both employee_id and employeeId.
func (f *Faculty) UnmarshalJSON(data []byte) error {
	type plain Faculty
	var aux struct {
		plain
		EmployeeIDCamel string `json:"employeeId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*f = Faculty(aux.plain)
	f.EmployeeID = firstNonEmpty(f.EmployeeID, aux.EmployeeIDCamel)
	return nil
}
