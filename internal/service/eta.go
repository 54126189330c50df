package service

import (
	"strings"
	"time"
)

// EtaQuote is a delivery window estimate for a postcode.
type EtaQuote struct {
	Postcode string `json:"postcode"`
	Standard string `json:"standard"`
	Express  string `json:"express"`
}

const etaDateLayout = "Jan 02"

// DeliveryEstimate computes business-day delivery windows: standard takes 2-4
// days, express 1-2. The postcode is echoed back but not consulted.
func DeliveryEstimate(postcode string, today time.Time) EtaQuote {
	stdFrom := addBusinessDays(today, 2)
	stdTo := addBusinessDays(today, 4)
	expFrom := addBusinessDays(today, 1)
	expTo := addBusinessDays(today, 2)

	return EtaQuote{
		Postcode: strings.TrimSpace(postcode),
		Standard: stdFrom.Format(etaDateLayout) + " - " + stdTo.Format(etaDateLayout),
		Express:  expFrom.Format(etaDateLayout) + " - " + expTo.Format(etaDateLayout),
	}
}

func addBusinessDays(start time.Time, days int) time.Time {
	d := start
	for added := 0; added < days; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return d
}
