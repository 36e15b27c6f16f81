package models

type Symptom string

const (
	SymptomCramps        Symptom = "Cramps"
	SymptomHeadache      Symptom = "Headache"
	SymptomBloating      Symptom = "Bloating"
	SymptomFatigue       Symptom = "Fatigue"
	SymptomMoodSwings    Symptom = "Mood Swings"
	SymptomCravings      Symptom = "Cravings"
	SymptomAcne          Symptom = "Acne"
	SymptomTenderBreasts Symptom = "Tender Breasts"
)

type BuiltinSymptom struct {
	Name  Symptom
	Icon  string
	Color string
}

func DefaultBuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		{Name: SymptomCramps, Icon: "🩸", Color: "#FF4444"},
		{Name: SymptomHeadache, Icon: "🤕", Color: "#FFA500"},
		{Name: SymptomBloating, Icon: "🎈", Color: "#3498DB"},
		{Name: SymptomFatigue, Icon: "😴", Color: "#95A5A6"},
		{Name: SymptomMoodSwings, Icon: "😢", Color: "#9B59B6"},
		{Name: SymptomCravings, Icon: "🍫", Color: "#A1887F"},
		{Name: SymptomAcne, Icon: "🔴", Color: "#E74C3C"},
		{Name: SymptomTenderBreasts, Icon: "💔", Color: "#E91E63"},
	}
}

func IsKnownSymptom(value Symptom) bool {
	for _, builtin := range DefaultBuiltinSymptoms() {
		if builtin.Name == value {
			return true
		}
	}
	return false
}
