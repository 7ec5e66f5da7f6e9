package value

// AmountOfMoney is a currency amount, e.g. "$20.50".
type AmountOfMoney struct {
	Val  float64
	Unit string
	Prec Precision
}

func (AmountOfMoney) Dimension() Dimension { return DimAmountOfMoney }
func (AmountOfMoney) TooAmbiguous() bool   { return false }
func (AmountOfMoney) Latent() bool         { return false }

// Temperature is a degree reading, e.g. "20 degrees Celsius".
type Temperature struct {
	Val        float64
	Unit       string // "Celsius", "Fahrenheit", "Kelvin", "degree", or "" if unspecified
	LatentFlag bool
}

func (Temperature) Dimension() Dimension { return DimTemperature }
func (Temperature) TooAmbiguous() bool   { return false }
func (t Temperature) Latent() bool       { return t.LatentFlag }

// Percentage is a bare percentage value, e.g. "50%".
type Percentage struct {
	Val float64
}

func (Percentage) Dimension() Dimension { return DimPercentage }
func (Percentage) TooAmbiguous() bool   { return false }
func (Percentage) Latent() bool         { return false }
