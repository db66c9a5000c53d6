package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"highwaybus/internal/domain/models"
	"highwaybus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const (
	notAvailable    = "N/A"
	maxFilenamePart = 40
)

// DocsService loads a single trip for the details view and renders its printable sheet.
type DocsService struct {
	Trips     TripGetter
	Votes     VoteReader
	RequestID string
}

// Details returns one trip in display shape with its stored vote count.
func (s DocsService) Details(ctx context.Context, tripID int64) (models.DisplayTrip, error) {
	rec, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return models.DisplayTrip{}, err
	}
	count, err := s.Votes.CountForTrip(ctx, tripID)
	if err != nil {
		return models.DisplayTrip{}, err
	}
	return FormatDisplayTrip(rec, count), nil
}

// GenerateTripSheet renders the trip details as a one-page PDF.
func (s DocsService) GenerateTripSheet(ctx context.Context, tripID int64) ([]byte, string, error) {
	trip, err := s.Details(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_trip_sheet", fmt.Sprintf("trip_id=%d", tripID))
	return buildTripSheetPDF(trip)
}

// serviceLabel falls back to the road type when no service type is recorded.
func serviceLabel(t models.DisplayTrip) string {
	if t.ServiceType != nil && strings.TrimSpace(*t.ServiceType) != "" {
		return *t.ServiceType
	}
	if t.Highway != nil && *t.Highway {
		return "Highway"
	}
	return "Normal"
}

func buildTripSheetPDF(t models.DisplayTrip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Details", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP DETAILS")
	pdf.Ln(12)

	section := func(title string, lines []string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		for _, l := range lines {
			pdf.Cell(0, 7, l)
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	section("Route Information", []string{
		fmt.Sprintf("Route No     : %s", utils.ValueOr(t.RouteNumber, notAvailable)),
		fmt.Sprintf("Distance     : %s", utils.ValueOr(t.Distance, notAvailable)),
		fmt.Sprintf("From         : %s", utils.ValueOr(t.StartLocation, "-")),
		fmt.Sprintf("To           : %s", utils.ValueOr(t.EndLocation, "-")),
	})
	section("Bus Details", []string{
		fmt.Sprintf("Bus Name     : %s", utils.ValueOr(t.BusName, notAvailable)),
		fmt.Sprintf("Bus Number   : %s", utils.ValueOr(t.BusNumber, "-")),
		fmt.Sprintf("Service Type : %s", serviceLabel(t)),
		fmt.Sprintf("Contact      : %s", utils.ValueOr(t.ContactNumber, notAvailable)),
	})
	section("Schedule & Pricing", []string{
		fmt.Sprintf("Departure    : %s", utils.ClockHM(t.DepartureTime)),
		fmt.Sprintf("Arrival      : %s", utils.ClockHM(t.ArrivalTime)),
		fmt.Sprintf("Ticket Price : %s", utils.FormatLKR(t.Price, notAvailable)),
	})

	if len(t.Stops) > 0 {
		stops := make([]string, 0, len(t.Stops))
		for i, stop := range t.Stops {
			stops = append(stops, fmt.Sprintf("%d. %s", i+1, stop))
		}
		section("Stops", stops)
	}

	if notes := utils.ValueOr(t.Notes, ""); notes != "" {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TRIP_%d_%s.pdf", t.ID, safeFilenamePart(utils.ValueOr(t.StartLocation, "")+"_"+utils.ValueOr(t.EndLocation, "")))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "_")
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > maxFilenamePart {
		cut := maxFilenamePart
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}
