package specialty

// Specialty is a medical field of practice. Deleting a specialty deletes the
// doctors affiliated with it.
type Specialty struct {
	ID          int64   `db:"id" json:"id" gorm:"primaryKey"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

func (Specialty) TableName() string { return "specialty" }

// apply copies the mutable fields of in onto s.
func (s *Specialty) apply(in *Specialty) {
	s.Name = in.Name
	s.Description = in.Description
}

// View is the API representation: the specialty with its doctors listed.
// The doctors do not repeat the specialty.
type View struct {
	*Specialty
	Doctors interface{} `json:"doctors"`
}
