package employee

type Employee struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	Name   string
	Email  string `gorm:"uniqueIndex:uq_employee_email"`
	Age    int
	Salary float64
}
