package format

import (
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the date layout used across the API (query params and JSON).
const ISODateLayout = "2006-01-02"

var thaiMonths = [13]string{
	"",
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// ISODate formats a time as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ThaiDate formats a date for display with the Thai month name and the
// Buddhist Era year, e.g. "5 มกราคม 2567".
func ThaiDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + ThaiMonthYear(t.Month(), t.Year())
}

// ThaiMonthYear formats a month/year pair for display, e.g. "มกราคม 2567".
// The year is converted to the Buddhist Era (CE + 543).
func ThaiMonthYear(month time.Month, year int) string {
	if month < time.January || month > time.December {
		return strconv.Itoa(year + 543)
	}
	return thaiMonths[month] + " " + strconv.Itoa(year+543)
}

// Baht formats an amount in satang as a baht string with thousands
// separators and two decimals, e.g. 444700 → "4,447.00".
func Baht(satang int64) string {
	sign := ""
	if satang < 0 {
		sign = "-"
		satang = -satang
	}
	baht := satang / 100
	cents := satang % 100
	return sign + groupThousands(baht) + "." + pad2(cents)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
