package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type ReceiptData struct {
	BookingType     string `json:"bookingType"` // "flight" or "hotel"
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Passengers      int    `json:"passengers"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	SpecialRequests string `json:"specialRequests"`
	Destination     string `json:"destination"`
	OfferSummary    string `json:"offerSummary"` // airline or hotel name
	RouteOrRoom     string `json:"routeOrRoom"`  // "JFK - CDG" or room category
	DepartureAt     string `json:"departureAt"`  // RFC 3339, flight only
	ArrivalAt       string `json:"arrivalAt"`    // RFC 3339, flight only
	Duration        string `json:"duration"`     // ISO 8601 token, flight only
	PriceTotal      string `json:"priceTotal"`
	Currency        string `json:"currency"`
}

// GenerateReceiptBytes renders a booking acknowledgment as a PDF and returns
// raw bytes. It is a pure function of the request — nothing is stored.
func GenerateReceiptBytes(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Watermark ────────────────────────────────────────────
	pdf.SetTextColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 55)
	pdf.TransformBegin()
	pdf.TransformRotate(42, 60, 200)
	pdf.Text(60, 200, "SAMPLE")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(16, 78, 48) // deep green
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Travel Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(167, 222, 188)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking Acknowledgment", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(232, 245, 237)
	pdf.SetDrawColor(16, 78, 48)
	pdf.SetTextColor(18, 86, 52)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is a demo acknowledgment, NOT a reservation. No booking has been made with any airline or hotel.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 78, 48)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Guest Info ────────────────────────────────────────────
	sectionHeader("Guest Information")
	name := fmt.Sprintf("%s %s", data.FirstName, data.LastName)
	if name == " " {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Email", data.Email)
	if data.Phone != "" {
		row("Phone", data.Phone)
	}
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Booking Details ───────────────────────────────────────
	if data.BookingType == "flight" {
		sectionHeader("Flight Details")
		row("Airline", data.OfferSummary)
		row("Route", data.RouteOrRoom)
		if data.DepartureAt != "" {
			row("Departure", fmt.Sprintf("%s, %s", FormatDate(data.DepartureAt), FormatTime(data.DepartureAt)))
		}
		if data.ArrivalAt != "" {
			row("Arrival", fmt.Sprintf("%s, %s", FormatDate(data.ArrivalAt), FormatTime(data.ArrivalAt)))
		}
		if data.Duration != "" {
			row("Duration", FormatDuration(data.Duration))
		}
		row("Passengers", fmt.Sprintf("%d", data.Passengers))
	} else {
		sectionHeader("Hotel Details")
		row("Hotel", data.OfferSummary)
		row("Room", data.RouteOrRoom)
		if data.CheckIn != "" {
			row("Check-in", data.CheckIn)
		}
		if data.CheckOut != "" {
			row("Check-out", data.CheckOut)
		}
	}
	row("Destination", data.Destination)
	row("Price", fmt.Sprintf("%s %s", data.PriceTotal, data.Currency))
	pdf.Ln(4)

	// ── Special Requests ──────────────────────────────────────
	if data.SpecialRequests != "" {
		sectionHeader("Special Requests")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, data.SpecialRequests, "", "L", false)
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Travel Planner · Demo acknowledgment · No reservation was made",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
