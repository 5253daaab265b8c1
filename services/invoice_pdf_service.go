package services

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/uthybuilds/Homespired-sub000/models"
)

// GenerateOrderInvoicePDF renders a downloadable invoice for an order.
func GenerateOrderInvoicePDF(order *models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("HOMESPIRED INTERIORS", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("orders@homespired.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Customer.Name, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Customer.Email, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s, %s %s", order.Customer.Address, order.Customer.City, order.Customer.State), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Items table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	for _, line := range order.Items {
		line := line
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(line.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", line.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatNaira(line.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(formatNaira(line.Price*float64(line.Quantity)), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", order.Subtotal},
		{fmt.Sprintf("Shipping (%s)", order.ZoneLabel), order.ShippingCost},
	}
	if order.DiscountAmount > 0 {
		totals = append(totals, struct {
			label string
			value float64
		}{fmt.Sprintf("Discount (%s)", order.DiscountCode), -order.DiscountAmount})
	}
	totals = append(totals, struct {
		label string
		value float64
	}{"Total", order.Total})

	for _, row := range totals {
		row := row
		style := consts.Normal
		if row.label == "Total" {
			style = consts.Bold
		}
		m.Row(5, func() {
			m.Col(8, func() {
				m.Text(row.label, props.Text{Size: 9, Style: style, Color: mediumGray, Align: consts.Right})
			})
			m.Col(4, func() {
				m.Text(formatNaira(row.value), props.Text{Size: 9, Style: style, Color: darkGray, Align: consts.Right})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return &buf, nil
}

func formatNaira(amount float64) string {
	return fmt.Sprintf("NGN %.2f", amount)
}
