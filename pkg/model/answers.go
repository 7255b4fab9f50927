package model

import "fmt"

// AnswerCode is the provider's identifier for an intake question. The set is
// fixed by the booking profile; codes outside it may appear on a record and
// are ignored by the answer mapper.
type AnswerCode string

const (
	AnswerCodeFirstName AnswerCode = "FNAME"
	AnswerCodeLastName  AnswerCode = "LNAME"
	AnswerCodeEmail     AnswerCode = "EMAIL"
	AnswerCodePhone     AnswerCode = "Q7"
	AnswerCodeNotes     AnswerCode = "Q5"
)

// CanonicalField is the domain attribute an answer code maps onto,
// independent of the provider's question coding.
type CanonicalField string

const (
	FieldFirstName CanonicalField = "firstName"
	FieldLastName  CanonicalField = "lastName"
	FieldEmail     CanonicalField = "email"
	FieldPhone     CanonicalField = "phone"
	FieldNotes     CanonicalField = "notes"
)

// CanonicalFields lists every tracked field, in the order they appear on a
// Booking. The normalizer requires an answer for each of them.
var CanonicalFields = []CanonicalField{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldNotes,
}

var codeToField = map[AnswerCode]CanonicalField{
	AnswerCodeFirstName: FieldFirstName,
	AnswerCodeLastName:  FieldLastName,
	AnswerCodeEmail:     FieldEmail,
	AnswerCodePhone:     FieldPhone,
	AnswerCodeNotes:     FieldNotes,
}

var fieldToCode map[CanonicalField]AnswerCode

func init() {
	fieldToCode = make(map[CanonicalField]AnswerCode, len(codeToField))
	for code, field := range codeToField {
		if _, dup := fieldToCode[field]; dup {
			panic(fmt.Sprintf("answer table: field %q mapped by more than one code", field))
		}
		fieldToCode[field] = code
	}
	for _, field := range CanonicalFields {
		if _, ok := fieldToCode[field]; !ok {
			panic(fmt.Sprintf("answer table: field %q has no answer code", field))
		}
	}
}

// FieldForCode translates a provider answer code into its canonical field.
// ok is false for codes outside the tracked enumeration.
func FieldForCode(code AnswerCode) (CanonicalField, bool) {
	field, ok := codeToField[code]
	return field, ok
}

// CodeForField returns the provider answer code backing a canonical field.
// The field enumeration is closed, so the lookup is total.
func CodeForField(field CanonicalField) AnswerCode {
	return fieldToCode[field]
}
