package domain

// TimeStandard contiene i minuti standard per rifare una camera in una zona,
// distinti per tipo di servizio.
type TimeStandard struct {
	Zone               string  `json:"zone"`
	ArrivalIndividual  float64 `json:"arrivalIndividual"`  // arrivo individuale
	StayoverIndividual float64 `json:"stayoverIndividual"` // fermata individuale
	ArrivalGroup       float64 `json:"arrivalGroup"`       // arrivo gruppo
	StayoverGroup      float64 `json:"stayoverGroup"`      // fermata gruppo
	Version            int32   `json:"-"`
}

// DefaultTimeStandard restituisce i tempi di fallback usati quando una zona
// non e' mai stata configurata.
func DefaultTimeStandard(zone string) TimeStandard {
	return TimeStandard{
		Zone:               zone,
		ArrivalIndividual:  60,
		StayoverIndividual: 30,
		ArrivalGroup:       45,
		StayoverGroup:      20,
	}
}
