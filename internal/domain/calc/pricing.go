// Package calc holds the pure derived-value calculators: booking pricing,
// utility billing, payroll computation, report aggregation and room
// availability. Every function here is a stateless transform over data the
// caller already fetched; none of them touch storage.
package calc

import (
	"errors"
	"math"
	"time"
)

// feeRate is the fixed provincial administrative fee applied to every booking.
const feeRate = 0.01

// ErrInvalidStay is returned when check-out is not after check-in.
var ErrInvalidStay = errors.New("check-out date must be after check-in date")

// ErrInvalidPrice is returned when the nightly rate is zero or negative.
var ErrInvalidPrice = errors.New("nightly price must be greater than zero")

// BookingQuote is the priced result of a stay interval.
type BookingQuote struct {
	Nights int   `json:"nights"`
	Total  int64 `json:"total"`
	Fee    int64 `json:"fee"`
	Final  int64 `json:"final"`
}

// BookingPrice prices a stay from the room's nightly rate in satang and the
// check-in/check-out dates. Nights are counted as whole days rounded up, so a
// partial last day still bills a full night.
func BookingPrice(priceSatang int64, checkIn, checkOut time.Time) (BookingQuote, error) {
	if priceSatang <= 0 {
		return BookingQuote{}, ErrInvalidPrice
	}
	if !checkOut.After(checkIn) {
		return BookingQuote{}, ErrInvalidStay
	}

	nights := Nights(checkIn, checkOut)
	total := int64(nights) * priceSatang
	fee := int64(math.Round(float64(total) * feeRate))

	return BookingQuote{
		Nights: nights,
		Total:  total,
		Fee:    fee,
		Final:  total + fee,
	}, nil
}

// Nights returns the number of billable nights between two dates, rounding a
// partial day up and never returning less than 1 for a positive interval.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
