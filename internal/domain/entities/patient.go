package entities

import "time"

// Patient is supplied by the caller and read-only to the questionnaire.
type Patient struct {
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	ConsultationTime time.Time `json:"consultation_time"`
}

func NewPatient(name string, age int, consultationTime time.Time) Patient {
	return Patient{
		Name:             name,
		Age:              age,
		ConsultationTime: consultationTime,
	}
}
