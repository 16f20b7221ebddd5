package patient

// Patient is identified externally by a unique national id.
type Patient struct {
	ID         int64   `db:"id" json:"id" gorm:"primaryKey"`
	FirstName  string  `db:"first_name" json:"first_name"`
	LastName   string  `db:"last_name" json:"last_name"`
	Age        int     `db:"age" json:"age"`
	NationalID string  `db:"national_id" json:"national_id"`
	Phone      *string `db:"phone" json:"phone,omitempty"`
}

func (Patient) TableName() string { return "patient" }

func (p *Patient) apply(in *Patient) {
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Age = in.Age
	p.NationalID = in.NationalID
	p.Phone = in.Phone
}

// View is the API representation: the patient with the clinical history
// and the consultations embedded. History is null until one is recorded.
// Neither child repeats the patient.
type View struct {
	*Patient
	History       interface{} `json:"history"`
	Consultations interface{} `json:"consultations"`
}
