package normalize

import "github.com/MartinG-source/senior-data-engineer-exercise/internal/model"

// RecordStats flags the data-quality outcomes observed while normalizing a
// single record. These are normal outcomes, not errors; the pipeline counts
// them for the run summary.
type RecordStats struct {
	EmailAbsent    bool
	PhoneInvalid   bool
	AddressChanged bool
}

// Record returns a normalized copy of in. Passthrough fields (contact_id,
// names, city, state, zip, extras) are copied unchanged; email, phone_number,
// and address are replaced with their normalized forms. An invalid phone
// number becomes an empty cell in the output record, but is reported
// distinctly from an absent one via RecordStats.
func Record(in *model.Contact, a *Addresser) (*model.Contact, RecordStats) {
	var stats RecordStats

	out := &model.Contact{
		ContactID: in.ContactID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Extra:     in.Extra,
	}

	out.Email = NormalizeEmail(in.Email)
	stats.EmailAbsent = out.Email == nil

	phone := NormalizePhone(in.PhoneNumber)
	out.PhoneNumber = phone.Value
	stats.PhoneInvalid = phone.Invalid

	out.Address = a.Normalize(in.Address)
	stats.AddressChanged = !equalStr(out.Address, in.Address)

	return out, stats
}

func equalStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
