package report

import "strings"

// signature is one signature column printed below a report.
type signature struct {
	Place string // Place and date line, empty for the left column
	Role  string
	Name  string
}

// signatures returns the leader (left) and treasurer (right) signatures.
func (h Header) signatures() (signature, signature) {
	place := FormatDate(h.PrintedOn)
	if h.CityName != "" {
		place = strings.TrimSuffix(h.CityName+", "+place, ", ")
	}

	return signature{Role: "Mengetahui, Pimpinan", Name: h.LeaderName},
		signature{Place: place, Role: "Bendahara", Name: h.TreasurerName}
}
