package doctor

import "github.com/clinic/clinic/internal/domain/specialty"

// Doctor belongs to exactly one specialty and is removed with it.
type Doctor struct {
	ID          int64   `db:"id" json:"id" gorm:"primaryKey"`
	FirstName   string  `db:"first_name" json:"first_name"`
	LastName    string  `db:"last_name" json:"last_name"`
	Phone       *string `db:"phone" json:"phone,omitempty"`
	SpecialtyID int64   `db:"specialty_id" json:"specialty_id"`
}

func (Doctor) TableName() string { return "doctor" }

// apply copies the mutable fields of in onto d. The specialty reference is
// replaced, not merged.
func (d *Doctor) apply(in *Doctor) {
	d.FirstName = in.FirstName
	d.LastName = in.LastName
	d.Phone = in.Phone
	d.SpecialtyID = in.SpecialtyID
}

// View is the API representation: the doctor with its specialty embedded.
type View struct {
	*Doctor
	Specialty *specialty.Specialty `json:"specialty,omitempty"`
}
