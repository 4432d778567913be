// Package pdf genera el boleto de una reserva en PDF.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  BOLETO DE BUS            │  N° de reserva   │
//	│  ─────────────────────────────────────────── │
//	│  ORIGEN  -  DESTINO                           │
//	│  Pasajero / Email / Asientos / Fecha          │
//	│  ─────────────────────────────────────────── │
//	│  QR (booking_id)          │  Leyenda          │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

var _ booking.TicketPDFGenerator = (*TicketGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// TicketGenerator implementa booking.TicketPDFGenerator usando Maroto v2.
type TicketGenerator struct {
	issuer string
}

// NewTicketGenerator construye el generador; issuer aparece como autor del documento.
func NewTicketGenerator(issuer string) *TicketGenerator {
	return &TicketGenerator{issuer: issuer}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *TicketGenerator) Generate(_ context.Context, b *entity.Booking) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("pdf: reserva nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleto "+b.BookingID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(b))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(b))
	m.AddRows(detailRows(b)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(b))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleto: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(b *entity.Booking) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("BOLETO DE BUS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("N° DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
			}),
			text.New(b.BookingID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

func routeRow(b *entity.Booking) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(b.StartStation+"  -  "+b.EndStation, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 4,
			}),
		),
	)
}

func detailRows(b *entity.Booking) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray})),
			col.New(8).Add(text.New(value, props.Text{Size: 9})),
		)
	}
	return []core.Row{
		field("Pasajero", b.UserName),
		field("Email", b.UserEmail),
		field("Asientos", strconv.Itoa(b.SeatsBooked)),
		field("Fecha de reserva", b.CreatedAt.UTC().Format("2006-01-02 15:04 MST")),
		field("Bus", b.BusID),
	}
}

func footerRow(b *entity.Booking) core.Row {
	return row.New(32).Add(
		col.New(4).Add(code.NewQr(b.BookingID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Presente este boleto al abordar. El código QR contiene el número de reserva.", props.Text{
				Size: 7, Color: colorGray, Top: 8, Left: 2,
			}),
		),
	)
}
